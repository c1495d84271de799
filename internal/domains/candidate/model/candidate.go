package model

import "time"

// Candidate is the profile behind one microsite. The natural key for
// reconciliation is (district_id, constituency_no); slug and the owning
// user's username are derived from it.
type Candidate struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"user_id" db:"user_id"`
	Slug               string    `json:"slug" db:"slug"`
	FullNameEn         string    `json:"full_name_en" db:"full_name_en"`
	FullNameBn         string    `json:"full_name_bn" db:"full_name_bn"`
	DivisionID         int64     `json:"division_id" db:"division_id"`
	DistrictID         int64     `json:"district_id" db:"district_id"`
	ConstituencyNo     int       `json:"constituency_no" db:"constituency_no"`
	PhotoURL           string    `json:"photo_url" db:"photo_url"`
	Designation        string    `json:"designation" db:"designation"`
	BriefIntro         string    `json:"brief_intro" db:"brief_intro"`
	IntroBn            string    `json:"intro_bn" db:"intro_bn"`
	PoliticalJourney   string    `json:"political_journey" db:"political_journey"`
	PoliticalJourneyBn string    `json:"political_journey_bn" db:"political_journey_bn"`
	PersonalProfile    string    `json:"personal_profile" db:"personal_profile"`
	PersonalProfileBn  string    `json:"personal_profile_bn" db:"personal_profile_bn"`
	Vision             string    `json:"vision" db:"vision"`
	VisionBn           string    `json:"vision_bn" db:"vision_bn"`
	FacebookLink       string    `json:"facebook_link" db:"facebook_link"`
	ResponsiblePerson  string    `json:"responsible_person" db:"responsible_person"`
	Email              string    `json:"email" db:"email"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// CandidateSummary is the list-page shape, joined with location names.
type CandidateSummary struct {
	ID             int64  `json:"id"`
	FullNameEn     string `json:"fullNameEn"`
	FullNameBn     string `json:"fullNameBn"`
	PhotoURL       string `json:"photoUrl"`
	Designation    string `json:"designation"`
	Slug           string `json:"slug"`
	DistrictBn     string `json:"districtBn"`
	DivisionBn     string `json:"divisionBn"`
	ConstituencyNo int    `json:"constituencyNo"`
}

// CandidateProfile is the full public profile, including the roster and
// gallery rendered on the microsite.
type CandidateProfile struct {
	ID                 int64         `json:"id"`
	FullNameEn         string        `json:"fullNameEn"`
	FullNameBn         string        `json:"fullNameBn"`
	Slug               string        `json:"slug"`
	DivisionID         int64         `json:"divisionId"`
	DistrictID         int64         `json:"districtId"`
	ConstituencyNo     int           `json:"constituencyNo"`
	PhotoURL           string        `json:"photoUrl"`
	Designation        string        `json:"designation"`
	BriefIntro         string        `json:"briefIntro"`
	IntroBn            string        `json:"introBn"`
	PoliticalJourney   string        `json:"politicalJourney"`
	PoliticalJourneyBn string        `json:"politicalJourneyBn"`
	PersonalProfile    string        `json:"personalProfile"`
	PersonalProfileBn  string        `json:"personalProfileBn"`
	Vision             string        `json:"vision"`
	VisionBn           string        `json:"visionBn"`
	FacebookLink       string        `json:"facebookLink"`
	ResponsiblePerson  string        `json:"responsiblePerson"`
	Email              string        `json:"email"`
	DistrictEn         string        `json:"districtEn"`
	DistrictBn         string        `json:"districtBn"`
	DivisionEn         string        `json:"divisionEn"`
	DivisionBn         string        `json:"divisionBn"`
	Team               []TeamEntry   `json:"team"`
	Gallery            []MediaEntry  `json:"gallery"`
}

// TeamEntry and MediaEntry mirror the team and media domains without
// importing them (profile assembly joins across all three).
type TeamEntry struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PhotoURL     string `json:"photoUrl"`
	FacebookLink string `json:"facebookLink"`
	LinkedinLink string `json:"linkedinLink"`
}

type MediaEntry struct {
	ID        int64     `json:"id"`
	FileURL   string    `json:"fileUrl"`
	FileType  string    `json:"fileType"`
	CreatedAt time.Time `json:"createdAt"`
}
