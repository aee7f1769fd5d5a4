package textutil_test

import (
	"testing"

	"dossard/internal/textutil"
)

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Prénom", "Prenom"},
		{"Catégorie", "Categorie"},
		{"Année", "Annee"},
		{"François", "Francois"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textutil.StripDiacritics(tc.in); got != tc.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Prénom", "prenom"},
		{"NumDossard", "numdossard"},
		{"Cl/Cat", "clcat"},
		{"Date Naissance", "datenaissance"},
		{"  Perf. ", "perf"},
		{"Clt Sexe", "cltsexe"},
	}
	for _, tc := range cases {
		if got := textutil.FoldLabel(tc.in); got != tc.want {
			t.Errorf("FoldLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Jean-Pierre", "jean pierre"},
		{"DUPONT", "dupont"},
		{"  Léa  ", "lea"},
		{"O'Brien", "o brien"},
	}
	for _, tc := range cases {
		if got := textutil.FoldName(tc.in); got != tc.want {
			t.Errorf("FoldName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
