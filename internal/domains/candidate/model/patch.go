package model

// ProfilePatch is a partial update. Nil pointers mean "leave unchanged";
// only the listed fields can ever reach the UPDATE statement.
type ProfilePatch struct {
	FullNameEn         *string `json:"full_name_en"`
	FullNameBn         *string `json:"full_name_bn"`
	Slug               *string `json:"slug"`
	DivisionID         *int64  `json:"division_id"`
	DistrictID         *int64  `json:"district_id"`
	ConstituencyNo     *int    `json:"constituency_no"`
	Designation        *string `json:"designation"`
	BriefIntro         *string `json:"brief_intro"`
	IntroBn            *string `json:"intro_bn"`
	PoliticalJourney   *string `json:"political_journey"`
	PoliticalJourneyBn *string `json:"political_journey_bn"`
	PersonalProfile    *string `json:"personal_profile"`
	PersonalProfileBn  *string `json:"personal_profile_bn"`
	Vision             *string `json:"vision"`
	VisionBn           *string `json:"vision_bn"`
	FacebookLink       *string `json:"facebook_link"`
	ResponsiblePerson  *string `json:"responsible_person"`
	Email              *string `json:"email"`
	PhotoURL           *string `json:"photo_url"`
}

// Columns returns the set columns and their values, in declaration order.
// The repository binds these positionally; no user input ever becomes SQL
// text.
func (p *ProfilePatch) Columns() ([]string, []any) {
	var cols []string
	var vals []any

	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if p.FullNameEn != nil {
		add("full_name_en", *p.FullNameEn)
	}
	if p.FullNameBn != nil {
		add("full_name_bn", *p.FullNameBn)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.DivisionID != nil {
		add("division_id", *p.DivisionID)
	}
	if p.DistrictID != nil {
		add("district_id", *p.DistrictID)
	}
	if p.ConstituencyNo != nil {
		add("constituency_no", *p.ConstituencyNo)
	}
	if p.Designation != nil {
		add("designation", *p.Designation)
	}
	if p.BriefIntro != nil {
		add("brief_intro", *p.BriefIntro)
	}
	if p.IntroBn != nil {
		add("intro_bn", *p.IntroBn)
	}
	if p.PoliticalJourney != nil {
		add("political_journey", *p.PoliticalJourney)
	}
	if p.PoliticalJourneyBn != nil {
		add("political_journey_bn", *p.PoliticalJourneyBn)
	}
	if p.PersonalProfile != nil {
		add("personal_profile", *p.PersonalProfile)
	}
	if p.PersonalProfileBn != nil {
		add("personal_profile_bn", *p.PersonalProfileBn)
	}
	if p.Vision != nil {
		add("vision", *p.Vision)
	}
	if p.VisionBn != nil {
		add("vision_bn", *p.VisionBn)
	}
	if p.FacebookLink != nil {
		add("facebook_link", *p.FacebookLink)
	}
	if p.ResponsiblePerson != nil {
		add("responsible_person", *p.ResponsiblePerson)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.PhotoURL != nil {
		add("photo_url", *p.PhotoURL)
	}

	return cols, vals
}

// IsEmpty reports whether no field is set.
func (p *ProfilePatch) IsEmpty() bool {
	cols, _ := p.Columns()
	return len(cols) == 0
}
