package mapping

// Field names a canonical result attribute.
type Field string

const (
	FieldBibNumber    Field = "bib_number"
	FieldFirstName    Field = "first_name"
	FieldLastName     Field = "last_name"
	FieldGender       Field = "gender"
	FieldBirthYear    Field = "birth_year"
	FieldBirthDate    Field = "birth_date"
	FieldCity         Field = "city"
	FieldClub         Field = "club"
	FieldCategory     Field = "category"
	FieldFinishTime   Field = "finish_time"
	FieldOverallRank  Field = "overall_rank"
	FieldGenderRank   Field = "gender_rank"
	FieldCategoryRank Field = "category_rank"
)

// Fields lists every canonical field in presentation order.
var Fields = []Field{
	FieldBibNumber,
	FieldFirstName,
	FieldLastName,
	FieldGender,
	FieldBirthYear,
	FieldBirthDate,
	FieldCity,
	FieldClub,
	FieldCategory,
	FieldFinishTime,
	FieldOverallRank,
	FieldGenderRank,
	FieldCategoryRank,
}

// KnownField resolves a field name supplied by the operator.
func KnownField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
