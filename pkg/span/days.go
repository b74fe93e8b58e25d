package span

import "tableflip.dev/tempo/pkg/temporal"

const secondsPerDay = 24 * 60 * 60

// Days returns the inclusive number of calendar days a complete date range
// covers, or 0 when an endpoint is missing.
func Days(r Range[temporal.Date]) int {
	if !r.Complete() {
		return 0
	}
	a, b := r.Start.Time().Unix(), r.End.Time().Unix()
	if b < a {
		a, b = b, a
	}
	return int((b-a)/secondsPerDay) + 1
}
