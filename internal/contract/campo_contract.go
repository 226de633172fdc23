package contract

import "ngpromant/internal/domain/entity"

type CampoRequest struct {
	Ambito           entity.AmbitoCampo   `json:"Ambito" validate:"required,oneof=1 2 3"`
	NombreCampo      string               `json:"NombreCampo" validate:"required,max=100"`
	EtiquetaCampo    *string              `json:"EtiquetaCampo" validate:"omitempty,max=100"`
	TipoDato         entity.TipoDatoCampo `json:"TipoDato" validate:"required,oneof=1 2 3 4 5 6"`
	OpcionesJSON     *string              `json:"OpcionesJSON"`
	EsObligatorio    bool                 `json:"EsObligatorio"`
	Orden            int                  `json:"Orden"`
	Descripcion      *string              `json:"Descripcion" validate:"omitempty,max=500"`
	PlaceholderTexto *string              `json:"PlaceholderTexto" validate:"omitempty,max=200"`
	ValorPorDefecto  *string              `json:"ValorPorDefecto"`
}

// ValorRequest sets the value of a custom field for one target object.
// At most one value may exist per (field, object) pair, so repeated sets
// overwrite in place.
type ValorRequest struct {
	IdCampo  int     `json:"IdCampo" validate:"required"`
	IdObjeto int     `json:"IdObjeto" validate:"required"`
	Valor    *string `json:"Valor"`
}
