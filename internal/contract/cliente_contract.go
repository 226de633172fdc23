package contract

import "time"

// ConexionClientes is the test-connection probe body: a cheap count
// proves both the HTTP layer and the narrow database session work.
type ConexionClientes struct {
	Message       string    `json:"message"`
	TotalClientes int64     `json:"totalClientes"`
	Timestamp     time.Time `json:"timestamp"`
}

// ClienteCreateRequest is the ClientesSimple creation payload. Field names
// are the lowercase ones the frontend sends, not the legacy column names.
type ClienteCreateRequest struct {
	Nombre          string  `json:"nombre" validate:"required,max=255"`
	DniCif          *string `json:"dniCif" validate:"omitempty,max=50"`
	Direccion       *string `json:"direccion" validate:"omitempty,max=500"`
	Poblacion       *string `json:"poblacion" validate:"omitempty,max=100"`
	Provincia       *string `json:"provincia" validate:"omitempty,max=100"`
	CodPostal       *string `json:"codPostal" validate:"omitempty,max=10"`
	Pais            *string `json:"pais" validate:"omitempty,max=100"`
	Telef1          *string `json:"telef1" validate:"omitempty,max=20"`
	Telef2          *string `json:"telef2" validate:"omitempty,max=20"`
	Email1          *string `json:"email1" validate:"omitempty,email,max=255"`
	Email2          *string `json:"email2" validate:"omitempty,email,max=255"`
	Observaciones   *string `json:"observaciones"`
	NombreComercial *string `json:"nombreComercial" validate:"omitempty,max=255"`
	Comercial       *string `json:"comercial" validate:"omitempty,max=255"`
	Descatalogado   *bool   `json:"descatalogado"`
}

// ClienteUpdateRequest patches only the fields present in the payload;
// nil means "leave as is". This is the narrow-context update convention.
type ClienteUpdateRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,max=255"`
	DniCif          *string `json:"dniCif" validate:"omitempty,max=50"`
	Direccion       *string `json:"direccion" validate:"omitempty,max=500"`
	Poblacion       *string `json:"poblacion" validate:"omitempty,max=100"`
	Provincia       *string `json:"provincia" validate:"omitempty,max=100"`
	CodPostal       *string `json:"codPostal" validate:"omitempty,max=10"`
	Pais            *string `json:"pais" validate:"omitempty,max=100"`
	Telef1          *string `json:"telef1" validate:"omitempty,max=20"`
	Telef2          *string `json:"telef2" validate:"omitempty,max=20"`
	Email1          *string `json:"email1" validate:"omitempty,email,max=255"`
	Email2          *string `json:"email2" validate:"omitempty,email,max=255"`
	Observaciones   *string `json:"observaciones"`
	NombreComercial *string `json:"nombreComercial" validate:"omitempty,max=255"`
	Comercial       *string `json:"comercial" validate:"omitempty,max=255"`
	Descatalogado   *bool   `json:"descatalogado"`
}

// ClienteReplaceRequest is the full-overwrite update used by the
// full-context service pathway: every field lands on the row as sent,
// nils included.
type ClienteReplaceRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,max=255"`
	DniCif          *string `json:"dniCif" validate:"omitempty,max=50"`
	Direccion       *string `json:"direccion" validate:"omitempty,max=500"`
	Poblacion       *string `json:"poblacion" validate:"omitempty,max=100"`
	Provincia       *string `json:"provincia" validate:"omitempty,max=100"`
	CodPostal       *string `json:"codPostal" validate:"omitempty,max=10"`
	Pais            *string `json:"pais" validate:"omitempty,max=100"`
	Telef1          *string `json:"telef1" validate:"omitempty,max=20"`
	Telef2          *string `json:"telef2" validate:"omitempty,max=20"`
	Email1          *string `json:"email1" validate:"omitempty,email,max=255"`
	Email2          *string `json:"email2" validate:"omitempty,email,max=255"`
	Observaciones   *string `json:"observaciones"`
	NombreComercial *string `json:"nombreComercial" validate:"omitempty,max=255"`
	Comercial       *string `json:"comercial" validate:"omitempty,max=255"`
	Descatalogado   *bool   `json:"descatalogado"`
}
