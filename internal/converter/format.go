package converter

import (
	"encoding/json"
	"math"
	"strconv"

	"gorm.io/datatypes"
)

// mapCoordPrecision is the decimal-place precision of coordinates served
// across account boundaries (~110 m at this latitude). Owners see their own
// coordinates untouched.
const mapCoordPrecision = 3

func roundCoord(v float64) float64 {
	scale := math.Pow(10, mapCoordPrecision)
	return math.Round(v*scale) / scale
}

// formatKRW renders an amount as the map sub-label, e.g. 20000 -> "20,000원".
func formatKRW(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out) + "원"
	}
	return string(out) + "원"
}

func decodeDays(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil
	}
	return days
}

// EncodeDays marshals a weekday-label set for storage. Used by the worker
// profile usecase on update.
func EncodeDays(days []string) datatypes.JSON {
	if len(days) == 0 {
		return nil
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
