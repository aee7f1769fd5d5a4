package mapping

// aliases maps folded header labels to canonical fields. Keys must be in
// textutil.FoldLabel form. The label variants below are the ones observed in
// Elogica exports and in hand-edited files derived from them.
var aliases = map[string]Field{
	// Identity
	"nom":          FieldLastName,
	"nomdefamille": FieldLastName,
	"prenom":       FieldFirstName,

	// Bib
	"numdossard": FieldBibNumber,
	"dossard":    FieldBibNumber,
	"doss":       FieldBibNumber,
	"num":        FieldBibNumber,

	// Gender
	"sexe":  FieldGender,
	"sx":    FieldGender,
	"genre": FieldGender,

	// Birth
	"datenaissance":  FieldBirthDate,
	"naissance":      FieldBirthDate,
	"ddn":            FieldBirthDate,
	"anneenaissance": FieldBirthYear,
	"annee":          FieldBirthYear,
	"nele":           FieldBirthYear,

	// Location and affiliation
	"ville":   FieldCity,
	"club":    FieldClub,
	"societe": FieldClub,

	// Category
	"cat":       FieldCategory,
	"categorie": FieldCategory,

	// Performance
	"perf":   FieldFinishTime,
	"temps":  FieldFinishTime,
	"chrono": FieldFinishTime,
	"tps":    FieldFinishTime,

	// Rankings
	"clt":        FieldOverallRank,
	"place":      FieldOverallRank,
	"classement": FieldOverallRank,
	"clgen":      FieldOverallRank,
	"scratch":    FieldOverallRank,
	"clsexe":     FieldGenderRank,
	"cltsexe":    FieldGenderRank,
	"clcat":      FieldCategoryRank,
	"cltcat":     FieldCategoryRank,
}
