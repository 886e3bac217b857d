package metrics

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// ratioValue carries a ratio that may be positive infinity. encoding/json
// rejects non-finite floats, so infinity is encoded as the JSON string
// "Infinity"; clients render it as an unbounded symbol.
type ratioValue float64

func (v ratioValue) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(v), 1) {
		return []byte(`"Infinity"`), nil
	}
	return []byte(strconv.FormatFloat(float64(v), 'g', -1, 64)), nil
}

func (v *ratioValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`"Infinity"`)) {
		*v = ratioValue(math.Inf(1))
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = ratioValue(f)
	return nil
}

// reportJSON shadows the ratio fields that may hold infinity. Shallower
// fields dominate the embedded ones during encoding, so only the shadowed
// fields change representation.
type reportJSON struct {
	reportAlias
	RiskRewardRatio ratioValue `json:"riskRewardRatio"`
	ProfitFactor    ratioValue `json:"profitFactor"`
	RecoveryFactor  ratioValue `json:"recoveryFactor"`
}

type reportAlias Report

// MarshalJSON encodes the report with infinity-safe ratio fields.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		reportAlias:     reportAlias(r),
		RiskRewardRatio: ratioValue(r.RiskRewardRatio),
		ProfitFactor:    ratioValue(r.ProfitFactor),
		RecoveryFactor:  ratioValue(r.RecoveryFactor),
	})
}

// UnmarshalJSON decodes a report produced by MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var decoded reportJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = Report(decoded.reportAlias)
	r.RiskRewardRatio = float64(decoded.RiskRewardRatio)
	r.ProfitFactor = float64(decoded.ProfitFactor)
	r.RecoveryFactor = float64(decoded.RecoveryFactor)
	return nil
}
