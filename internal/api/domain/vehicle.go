package domain

// Vehicle is a fleet vehicle. BusinessName is the owning company
// ("razao_social") and is what vehicle search matches against.
type Vehicle struct {
	ID           string `json:"_id"`
	Brand        string `json:"marca"`
	Model        string `json:"modelo"`
	Color        string `json:"cor"`
	Plate        string `json:"placa"`
	Renavam      string `json:"renavam"`
	BusinessName string `json:"razao_social,omitempty"`
}
