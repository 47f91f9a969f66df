package workout

import "time"

// VolumePoint is one day's total tonnage.
type VolumePoint struct {
	Day    time.Time
	Volume float64
}

// DailyVolumes buckets entry volume per calendar day over the last days
// days ending at now, oldest first. Days without entries get a zero
// point, so the chart always has a fixed number of bars.
func DailyVolumes(entries []Entry, days int, now time.Time) []VolumePoint {
	if days <= 0 {
		return nil
	}

	start := truncateDay(now).AddDate(0, 0, -(days - 1))
	points := make([]VolumePoint, days)
	for i := range points {
		points[i].Day = start.AddDate(0, 0, i)
	}

	for _, e := range entries {
		day := truncateDay(e.Date)
		idx := int(day.Sub(start).Hours() / 24)
		if idx < 0 || idx >= days {
			continue
		}
		points[idx].Volume += e.Volume()
	}
	return points
}

// TotalVolume sums the tonnage of all entries.
func TotalVolume(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Volume()
	}
	return total
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
