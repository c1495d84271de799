package model

import "strings"

// ImportRow is one spreadsheet data row keyed by header text.
type ImportRow map[string]string

// RowError records why one row was skipped. Row numbers are 1-based
// spreadsheet line numbers (data starts at 2, after the header).
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportSummary is the aggregate outcome of one import pass.
type ImportSummary struct {
	TotalRows      int        `json:"totalRows"`
	Success        int        `json:"success"`
	Skipped        int        `json:"skipped"`
	SkippedDetails []RowError `json:"skippedDetails"`
}

// Canonical importer fields.
const (
	FieldDivision           = "Division"
	FieldDistrict           = "District"
	FieldConstituencyNo     = "Constituency_No"
	FieldFullNameEn         = "Candidate_Name_En"
	FieldFullNameBn         = "Full_Name_Bn"
	FieldBriefIntro         = "Brief_Intro"
	FieldIntroBn            = "Intro_Bn"
	FieldPoliticalJourney   = "Political_Journey"
	FieldPoliticalJourneyBn = "Political_Journey_Bn"
	FieldPersonalProfile    = "Personal_Profile"
	FieldPersonalProfileBn  = "Personal_Profile_Bn"
	FieldVision             = "Vision"
	FieldVisionBn           = "Vision_Bn"
	FieldFacebookLink       = "Facebook_Link"
	FieldResponsiblePerson  = "Responsible_Person"
	FieldEmail              = "Email"
)

// headerVariants maps each canonical field to the header spellings seen
// in real upload templates, tried in order. The Bengali columns circulate
// with more than one spelling.
var headerVariants = map[string][]string{
	FieldDivision:           {"Division"},
	FieldDistrict:           {"District"},
	FieldConstituencyNo:     {"Constituency_No", "Constituency No"},
	FieldFullNameEn:         {"Candidate_Name_En", "Candidate_Name_EN"},
	FieldFullNameBn:         {"প্রার্থির_নাম", "প্রার্থীর_নাম"},
	FieldBriefIntro:         {"Brief_Intro"},
	FieldIntroBn:            {"প্রারম্ভ", "প্রারম্ভিক_পরিচিতি"},
	FieldPoliticalJourney:   {"Political_Journey"},
	FieldPoliticalJourneyBn: {"রাজনৈতিক_যাত্রা"},
	FieldPersonalProfile:    {"Personal_Profile"},
	FieldPersonalProfileBn:  {"ব্যাক্তিগত_জীবন", "ব্যক্তিগত_জীবন"},
	FieldVision:             {"Vision"},
	FieldVisionBn:           {"এলাকা_নিয়ে_তার_স্বপ্ন", "এলাকা_নিয়ে_স্বপ্ন"},
	FieldFacebookLink:       {"Facebook_Link"},
	FieldResponsiblePerson:  {"Responsible_Person"},
	FieldEmail:              {"Email"},
}

// Get returns the trimmed value of a canonical field, trying each accepted
// header variant in order. Absent fields come back as "".
func (r ImportRow) Get(field string) string {
	for _, header := range headerVariants[field] {
		if v, ok := r[header]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
