package export

import (
	"fmt"

	"github.com/sehaty/sehaty/internal/snapshot"
)

// EmergencyCard is the data behind the printed emergency card: the minimum a
// first responder needs, assembled from an already-loaded snapshot. Every
// field is populated best-effort; an empty card for a patient with no
// history is valid.
type EmergencyCard struct {
	NationalID       string   `json:"national_id"`
	FullName         string   `json:"full_name"`
	Age              *int     `json:"age"`
	BloodType        string   `json:"blood_type"`
	Allergies        []string `json:"allergies"`
	Medications      []string `json:"medications"`
	DNR              bool     `json:"dnr"`
	OrganDonor       bool     `json:"organ_donor"`
	EmergencyContact string   `json:"emergency_contact"`
	AttorneyName     string   `json:"power_of_attorney_name"`
	AttorneyContact  string   `json:"power_of_attorney_contact"`
}

// NewEmergencyCard projects a snapshot onto the card layout. Allergy lines
// carry severity when present ("Penicillin (Severe)"); medication lines
// carry dosage. Only active medications appear in a snapshot, so no
// filtering happens here.
func NewEmergencyCard(s *snapshot.PatientSnapshot) *EmergencyCard {
	card := &EmergencyCard{
		NationalID:       str(s.Identity["national_id"]),
		FullName:         str(s.Identity["full_name"]),
		BloodType:        str(s.Identity["blood_type"]),
		EmergencyContact: str(s.Identity["emergency_contact"]),
		Allergies:        make([]string, 0, len(s.Allergies)),
		Medications:      make([]string, 0, len(s.CurrentMedications)),
	}

	if age, ok := s.Identity["age"].(int); ok {
		card.Age = &age
	}

	for _, a := range s.Allergies {
		line := str(a["allergen_name"])
		if sev := str(a["severity"]); sev != "" {
			line = fmt.Sprintf("%s (%s)", line, sev)
		}
		card.Allergies = append(card.Allergies, line)
	}

	for _, m := range s.CurrentMedications {
		line := str(m["medication_name"])
		if d := str(m["dosage"]); d != "" {
			line = fmt.Sprintf("%s %s", line, d)
		}
		card.Medications = append(card.Medications, line)
	}

	if d := s.EmergencyDirectives; d != nil {
		card.DNR, _ = d["dnr_status"].(bool)
		card.OrganDonor, _ = d["organ_donor"].(bool)
		card.AttorneyName = str(d["power_of_attorney_name"])
		card.AttorneyContact = str(d["power_of_attorney_contact"])
	}

	return card
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
