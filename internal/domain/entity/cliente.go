package entity

import "time"

// Cliente maps the legacy Clientes table. The primary key is assigned
// manually (max+1), the schema has no generated values for this table.
//
// Column names come straight from the SQL Server schema; JSON names are
// the legacy uppercase ones except for the handful of fields the frontend
// expects in lowercase.
type Cliente struct {
	ID              int        `gorm:"column:ID;primaryKey;autoIncrement:false" json:"id"`
	DniCif          *string    `gorm:"column:DNICIF;size:100" json:"dnicif"`
	Nombre          *string    `gorm:"column:NOMBRE;size:100" json:"nombre"`
	Direccion       *string    `gorm:"column:DIRECCION;size:100" json:"DIRECCION"`
	Poblacion       *string    `gorm:"column:POBLACION;size:100" json:"poblacion"`
	Provincia       *string    `gorm:"column:PROVINCIA;size:100" json:"provincia"`
	CodPostal       *string    `gorm:"column:CODPOSTAL;size:100" json:"CODPOSTAL"`
	Pais            *string    `gorm:"column:PAIS;size:100" json:"PAIS"`
	Telef1          *string    `gorm:"column:TELEF1;size:100" json:"telef1"`
	Telef2          *string    `gorm:"column:TELEF2;size:100" json:"TELEF2"`
	Email1          *string    `gorm:"column:EMAIL1;size:100" json:"email1"`
	Email2          *string    `gorm:"column:EMAIL2;size:100" json:"EMAIL2"`
	Observaciones   *string    `gorm:"column:OBSERVACIONES" json:"OBSERVACIONES"`
	NombreComercial *string    `gorm:"column:NOMBRECOMERCIAL;size:100" json:"nombrecomercial"`
	Segmento        *string    `gorm:"column:SEGMENTO;size:100" json:"SEGMENTO"`
	NumBono         *string    `gorm:"column:NUMBONO;size:100" json:"NUMBONO"`
	FechaPresentada *time.Time `gorm:"column:FECHAPRESENTADA" json:"FECHAPRESENTADA"`
	FechaConcesion  *time.Time `gorm:"column:FECHACONCESION" json:"FECHACONCESION"`
	Cnae            *string    `gorm:"column:CNAE;size:100" json:"CNAE"`
	Iae             *string    `gorm:"column:IAE;size:100" json:"IAE"`
	PlantillaMedia  *string    `gorm:"column:PLANTILLAMEDIA;size:100" json:"PLANTILLAMEDIA"`
	Antiguedad      *string    `gorm:"column:ANTIGUEDAD;size:100" json:"ANTIGUEDAD"`
	Comercial       *string    `gorm:"column:COMERCIAL;size:100" json:"comercial"`
	Test            *bool      `gorm:"column:TEST" json:"TEST"`
	Rv              *bool      `gorm:"column:RV" json:"RV"`
	Minimis         *string    `gorm:"column:MINIMIS;size:100" json:"MINIMIS"`
	RepLegal        *string    `gorm:"column:REPLEGAL;size:100" json:"REPLEGAL"`
	RepLegalCargo   *string    `gorm:"column:REPLEGALCARGO;size:100" json:"REPLEGALCARGO"`
	RepLegalDni     *string    `gorm:"column:REPLEGALDNI;size:100" json:"REPLEGALDNI"`
	RepLegalTelef   *string    `gorm:"column:REPLEGALTELEF;size:100" json:"REPLEGALTELEF"`
	Notario         *string    `gorm:"column:NOTARIO;size:100" json:"NOTARIO"`
	Protocolo       *string    `gorm:"column:PROTOCOLO;size:100" json:"PROTOCOLO"`
	FechaProtocolo  *time.Time `gorm:"column:FECHAPROTOCOLO" json:"FECHAPROTOCOLO"`
	Presentada      *bool      `gorm:"column:PRESENTADA;default:false" json:"PRESENTADA"`
	Concesion       *bool      `gorm:"column:CONCESION;default:false" json:"CONCESION"`
	IdUsuario       *int       `gorm:"column:IDUSUARIO" json:"IDUSUARIO"`
	TextLead        *string    `gorm:"column:TEXTLEAD" json:"TEXTLEAD"`
	NumRopo         *string    `gorm:"column:NUMROPO" json:"NUMROPO"`
	CaduRopo        *time.Time `gorm:"column:CADUROPO" json:"CADUROPO"`

	// Soft-delete flag. Flagged clients stay addressable by ID but are
	// excluded from active listings.
	Descatalogado *bool `gorm:"column:DESCATALOGADO;default:false" json:"descatalogado"`

	// Relations
	Contratos []Contrato `gorm:"foreignKey:ClienteID;references:ID" json:"-"`
}

func (Cliente) TableName() string { return "Clientes" }

// Activo reports whether the client should appear in active listings.
func (c *Cliente) Activo() bool {
	return c.Descatalogado == nil || !*c.Descatalogado
}
