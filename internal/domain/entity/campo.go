package entity

import "time"

// AmbitoCampo scopes a custom field to one entity type.
type AmbitoCampo int

const (
	AmbitoCliente    AmbitoCampo = 1
	AmbitoContrato   AmbitoCampo = 2
	AmbitoIncidencia AmbitoCampo = 3
)

type TipoDatoCampo int

const (
	TipoDatoTexto      TipoDatoCampo = 1
	TipoDatoNumero     TipoDatoCampo = 2
	TipoDatoFecha      TipoDatoCampo = 3
	TipoDatoLista      TipoDatoCampo = 4
	TipoDatoBooleano   TipoDatoCampo = 5
	TipoDatoTextoLargo TipoDatoCampo = 6
)

// CampoPersonalizado defines a typed custom attribute without a schema
// migration (EAV). Values live in ValorCampo.
type CampoPersonalizado struct {
	IdCampo          int           `gorm:"column:IdCampo;primaryKey;autoIncrement" json:"IdCampo"`
	Ambito           AmbitoCampo   `gorm:"column:Ambito;not null;uniqueIndex:IX_CampoPersonalizado_Ambito_Nombre" json:"Ambito"`
	NombreCampo      string        `gorm:"column:NombreCampo;size:100;not null;uniqueIndex:IX_CampoPersonalizado_Ambito_Nombre" json:"NombreCampo"`
	EtiquetaCampo    *string       `gorm:"column:EtiquetaCampo;size:100" json:"EtiquetaCampo"`
	TipoDato         TipoDatoCampo `gorm:"column:TipoDato;not null" json:"TipoDato"`
	OpcionesJSON     *string       `gorm:"column:OpcionesJSON" json:"OpcionesJSON"`
	EsObligatorio    bool          `gorm:"column:EsObligatorio;default:false" json:"EsObligatorio"`
	Activo           bool          `gorm:"column:Activo;default:true" json:"Activo"`
	Orden            int           `gorm:"column:Orden;default:0" json:"Orden"`
	Descripcion      *string       `gorm:"column:Descripcion;size:500" json:"Descripcion"`
	PlaceholderTexto *string       `gorm:"column:PlaceholderTexto;size:200" json:"PlaceholderTexto"`
	ValorPorDefecto  *string       `gorm:"column:ValorPorDefecto" json:"ValorPorDefecto"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`
	CreadoPor         *string    `gorm:"column:CreadoPor;size:100" json:"CreadoPor"`
}

func (CampoPersonalizado) TableName() string { return "CamposPersonalizados" }

// ValorCampo stores the value of a custom field for one target object
// (a Cliente, Contrato or Incidencia ID, depending on the field's scope).
// A target object holds at most one value per field.
type ValorCampo struct {
	IdValor  int     `gorm:"column:IdValor;primaryKey;autoIncrement" json:"IdValor"`
	IdCampo  int     `gorm:"column:IdCampo;not null;uniqueIndex:IX_ValorCampo_Campo_Objeto" json:"IdCampo"`
	IdObjeto int     `gorm:"column:IdObjeto;not null;uniqueIndex:IX_ValorCampo_Campo_Objeto" json:"IdObjeto"`
	Valor    *string `gorm:"column:Valor" json:"Valor"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`

	Campo *CampoPersonalizado `gorm:"foreignKey:IdCampo;references:IdCampo;constraint:OnDelete:CASCADE" json:"Campo,omitempty"`
}

func (ValorCampo) TableName() string { return "ValoresCampos" }
