// Package export is the serialization boundary for patient snapshots. The
// normalizer leaves temporal values as time.Time for in-process consumers;
// this package converts them to ISO-8601 strings exactly once, on the way
// out.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sehaty/sehaty/internal/snapshot"
)

const dateLayout = "2006-01-02"

// ISO8601 returns a copy of the snapshot with every temporal value rendered
// as a string: calendar-date fields as YYYY-MM-DD, instants as RFC 3339.
// The input snapshot is not modified.
func ISO8601(s *snapshot.PatientSnapshot) *snapshot.PatientSnapshot {
	if s == nil {
		return nil
	}
	return &snapshot.PatientSnapshot{
		Identity:            isoMap(s.Identity),
		Allergies:           isoMaps(s.Allergies),
		ChronicDiseases:     isoMaps(s.ChronicDiseases),
		CurrentMedications:  isoMaps(s.CurrentMedications),
		Surgeries:           isoMaps(s.Surgeries),
		Hospitalizations:    isoMaps(s.Hospitalizations),
		Vaccinations:        isoMaps(s.Vaccinations),
		FamilyHistory:       isoMaps(s.FamilyHistory),
		Disabilities:        isoMaps(s.Disabilities),
		EmergencyDirectives: isoMap(s.EmergencyDirectives),
		Lifestyle:           isoMap(s.Lifestyle),
		Insurance:           isoMap(s.Insurance),
	}
}

// JSON serializes the snapshot for external consumers, with all dates as
// ISO-8601 strings and enumerations already reduced to scalars.
func JSON(s *snapshot.PatientSnapshot) ([]byte, error) {
	out, err := json.MarshalIndent(ISO8601(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return out, nil
}

func isoMaps(in []map[string]any) []map[string]any {
	if in == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(in))
	for _, m := range in {
		out = append(out, isoMap(m))
	}
	return out
}

func isoMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if t, ok := v.(time.Time); ok {
			if snapshot.DateOnlyKeys[k] {
				out[k] = t.Format(dateLayout)
			} else {
				out[k] = t.Format(time.RFC3339)
			}
			continue
		}
		out[k] = v
	}
	return out
}
