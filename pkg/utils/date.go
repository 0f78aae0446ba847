package utils

import "time"

// ReportTimezone is the civil timezone every report date is interpreted
// in. time.LoadLocation only fails when tzdata is missing, in which case
// the fixed IST offset keeps the math correct.
var ReportTimezone = loadReportTimezone()

func loadReportTimezone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// ISTCivilDate converts a Unix-epoch-seconds instant to its calendar
// date in IST. A payment created 00:30 IST belongs to that IST day even
// though its UTC day differs.
func ISTCivilDate(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).In(ReportTimezone).Format(time.DateOnly)
}

// ISTMidnightMillis returns the epoch milliseconds of midnight IST on
// the given YYYY-MM-DD date.
func ISTMidnightMillis(date string) (int64, error) {
	t, err := time.ParseInLocation(time.DateOnly, date, ReportTimezone)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// ISTDate formats the given instant as a calendar date in IST, shifted
// back by offsetDays.
func ISTDate(now time.Time, offsetDays int) string {
	return now.In(ReportTimezone).AddDate(0, 0, -offsetDays).Format(time.DateOnly)
}
