package models

// Details holds the biographical answers from the "tell us about you" form.
// Every field is optional free text.
type Details struct {
	FullName        string `gorm:"type:text" bson:"fullName" json:"fullName"`
	Location        string `gorm:"type:text" bson:"location" json:"location"`
	Education       string `gorm:"type:text" bson:"education" json:"education"`
	Achievements    string `gorm:"type:text" bson:"achievements" json:"achievements"`
	Subjects        string `gorm:"type:text" bson:"subjects" json:"subjects"`
	FutureGoals     string `gorm:"type:text" bson:"futureGoals" json:"futureGoals"`
	Impact          string `gorm:"type:text" bson:"impact" json:"impact"`
	Projects        string `gorm:"type:text" bson:"projects" json:"projects"`
	WorkExperience  string `gorm:"type:text" bson:"workExperience" json:"workExperience"`
	Hobbies         string `gorm:"type:text" bson:"hobbies" json:"hobbies"`
	Leadership      string `gorm:"type:text" bson:"leadership" json:"leadership"`
	Competitions    string `gorm:"type:text" bson:"competitions" json:"competitions"`
	Challenges      string `gorm:"type:text" bson:"challenges" json:"challenges"`
	Values          string `gorm:"type:text" bson:"values" json:"values"`
	UniqueTraits    string `gorm:"type:text" bson:"uniqueTraits" json:"uniqueTraits"`
	Family          string `gorm:"type:text" bson:"family" json:"family"`
	FamilyInfluence string `gorm:"type:text" bson:"familyInfluence" json:"familyInfluence"`
	Inspiration     string `gorm:"type:text" bson:"inspiration" json:"inspiration"`
	Traditions      string `gorm:"type:text" bson:"traditions" json:"traditions"`
	Colleges        string `gorm:"type:text" bson:"colleges" json:"colleges"`
	GoodFit         string `gorm:"type:text" bson:"goodFit" json:"goodFit"`
	Additional      string `gorm:"type:text" bson:"additional" json:"additional"`
}

// DetailField names one entry of Details. The set is closed: only the
// constants below are accepted by ParseDetailField.
type DetailField string

const (
	FieldFullName        DetailField = "fullName"
	FieldLocation        DetailField = "location"
	FieldEducation       DetailField = "education"
	FieldAchievements    DetailField = "achievements"
	FieldSubjects        DetailField = "subjects"
	FieldFutureGoals     DetailField = "futureGoals"
	FieldImpact          DetailField = "impact"
	FieldProjects        DetailField = "projects"
	FieldWorkExperience  DetailField = "workExperience"
	FieldHobbies         DetailField = "hobbies"
	FieldLeadership      DetailField = "leadership"
	FieldCompetitions    DetailField = "competitions"
	FieldChallenges      DetailField = "challenges"
	FieldValues          DetailField = "values"
	FieldUniqueTraits    DetailField = "uniqueTraits"
	FieldFamily          DetailField = "family"
	FieldFamilyInfluence DetailField = "familyInfluence"
	FieldInspiration     DetailField = "inspiration"
	FieldTraditions      DetailField = "traditions"
	FieldColleges        DetailField = "colleges"
	FieldGoodFit         DetailField = "goodFit"
	FieldAdditional      DetailField = "additional"
)

// DetailFields lists every field in form order.
var DetailFields = []DetailField{
	FieldFullName, FieldLocation, FieldEducation, FieldAchievements,
	FieldSubjects, FieldFutureGoals, FieldImpact, FieldProjects,
	FieldWorkExperience, FieldHobbies, FieldLeadership, FieldCompetitions,
	FieldChallenges, FieldValues, FieldUniqueTraits, FieldFamily,
	FieldFamilyInfluence, FieldInspiration, FieldTraditions, FieldColleges,
	FieldGoodFit, FieldAdditional,
}

// column names follow gorm's default naming with the details_ prefix
var detailColumns = map[DetailField]string{
	FieldFullName:        "details_full_name",
	FieldLocation:        "details_location",
	FieldEducation:       "details_education",
	FieldAchievements:    "details_achievements",
	FieldSubjects:        "details_subjects",
	FieldFutureGoals:     "details_future_goals",
	FieldImpact:          "details_impact",
	FieldProjects:        "details_projects",
	FieldWorkExperience:  "details_work_experience",
	FieldHobbies:         "details_hobbies",
	FieldLeadership:      "details_leadership",
	FieldCompetitions:    "details_competitions",
	FieldChallenges:      "details_challenges",
	FieldValues:          "details_values",
	FieldUniqueTraits:    "details_unique_traits",
	FieldFamily:          "details_family",
	FieldFamilyInfluence: "details_family_influence",
	FieldInspiration:     "details_inspiration",
	FieldTraditions:      "details_traditions",
	FieldColleges:        "details_colleges",
	FieldGoodFit:         "details_good_fit",
	FieldAdditional:      "details_additional",
}

// ParseDetailField reports whether name is one of the known detail fields.
func ParseDetailField(name string) (DetailField, bool) {
	f := DetailField(name)
	_, ok := detailColumns[f]
	return f, ok
}

// Column is the SQL column backing the field.
func (f DetailField) Column() string {
	return detailColumns[f]
}

// DocumentPath is the dotted path of the field inside a user document.
func (f DetailField) DocumentPath() string {
	return "details." + string(f)
}

func (d *Details) field(f DetailField) *string {
	switch f {
	case FieldFullName:
		return &d.FullName
	case FieldLocation:
		return &d.Location
	case FieldEducation:
		return &d.Education
	case FieldAchievements:
		return &d.Achievements
	case FieldSubjects:
		return &d.Subjects
	case FieldFutureGoals:
		return &d.FutureGoals
	case FieldImpact:
		return &d.Impact
	case FieldProjects:
		return &d.Projects
	case FieldWorkExperience:
		return &d.WorkExperience
	case FieldHobbies:
		return &d.Hobbies
	case FieldLeadership:
		return &d.Leadership
	case FieldCompetitions:
		return &d.Competitions
	case FieldChallenges:
		return &d.Challenges
	case FieldValues:
		return &d.Values
	case FieldUniqueTraits:
		return &d.UniqueTraits
	case FieldFamily:
		return &d.Family
	case FieldFamilyInfluence:
		return &d.FamilyInfluence
	case FieldInspiration:
		return &d.Inspiration
	case FieldTraditions:
		return &d.Traditions
	case FieldColleges:
		return &d.Colleges
	case FieldGoodFit:
		return &d.GoodFit
	case FieldAdditional:
		return &d.Additional
	}
	return nil
}

// Get returns the value of f, or "" for an unknown field.
func (d Details) Get(f DetailField) string {
	if p := d.field(f); p != nil {
		return *p
	}
	return ""
}

// Set assigns value to f. Unknown fields are ignored and reported as false.
func (d *Details) Set(f DetailField, value string) bool {
	p := d.field(f)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Columns maps every details column to its value, empty strings included,
// so a full replace clears fields the caller left blank.
func (d Details) Columns() map[string]any {
	cols := make(map[string]any, len(DetailFields))
	for _, f := range DetailFields {
		cols[f.Column()] = d.Get(f)
	}
	return cols
}
