package importer

import (
	"strings"

	dossierdomain "github.com/hscdigital/douanapp/internal/dossier/domain"
	"github.com/hscdigital/douanapp/pkg/textutil"
)

// Spreadsheets arrive with unpredictable header spellings ("CH", "N° CH",
// "numero_CH"). Each logical field lists the normalized substrings that
// identify its column, tried in header order.
var columnCandidates = []struct {
	field      string
	candidates []string
}{
	{"numeroCH", []string{"ch", "numeroch", "numch", "nch"}},
	{"chassis", []string{"chassis"}},
	{"annee", []string{"annee", "year"}},
	{"reference", []string{"ref", "reference", "refvehicule"}},
	{"type", []string{"type", "typevehicule"}},
	{"nom", []string{"nom", "nomclient"}},
	{"prenom", []string{"prenom", "prenomclient"}},
	{"telephone", []string{"tel", "telephone", "phone"}},
	{"statut", []string{"statut", "status", "etat"}},
	{"notes", []string{"note", "observation", "commentaire"}},
}

// resolveColumns maps logical field names to 0-based column indexes by fuzzy
// matching the header row. Unmatched fields are absent from the map. Pure, so
// header resolution is testable without a workbook.
func resolveColumns(headers []string) map[string]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = textutil.Normalize(h)
	}

	columns := make(map[string]int, len(columnCandidates))
	for _, spec := range columnCandidates {
		for i, header := range normalized {
			if header == "" {
				continue
			}
			matched := false
			for _, c := range spec.candidates {
				if strings.Contains(header, c) {
					matched = true
					break
				}
			}
			if matched {
				columns[spec.field] = i
				break
			}
		}
	}
	return columns
}

// MapStatut maps a free-text status cell to the closest workflow stage,
// defaulting to the first stage when nothing matches.
func MapStatut(raw string) dossierdomain.StatutDossier {
	s := textutil.NormalizeLetters(raw)
	switch {
	case strings.Contains(s, "cartegrise") && strings.Contains(s, "sortie"):
		return dossierdomain.StatutCarteGriseSortie
	case strings.Contains(s, "cartegrise") && strings.Contains(s, "entree"):
		return dossierdomain.StatutCarteGriseEntree
	case strings.Contains(s, "provisoire") && strings.Contains(s, "sortie"):
		return dossierdomain.StatutProvisoireSortie
	case strings.Contains(s, "provisoire") && strings.Contains(s, "entree"):
		return dossierdomain.StatutProvisoireEntree
	default:
		return dossierdomain.StatutLance
	}
}
