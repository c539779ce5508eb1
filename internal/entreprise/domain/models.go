package domain

// EntrepriseInfo is the company identity printed on document letterheads.
// It is a singleton record, not a collection.
type EntrepriseInfo struct {
	Nom       string `json:"nom"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Logo      string `json:"logo,omitempty"`
}

// Default is served while nothing is stored yet.
func Default() EntrepriseInfo {
	return EntrepriseInfo{Nom: "Haidara Service Commercial (HSC)"}
}
