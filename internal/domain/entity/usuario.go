package entity

import "time"

type RolUsuario int

const (
	RolAdmin       RolUsuario = 1
	RolGestor      RolUsuario = 2
	RolComercial   RolUsuario = 3
	RolSoloLectura RolUsuario = 4
)

func (r RolUsuario) String() string {
	switch r {
	case RolAdmin:
		return "Admin"
	case RolGestor:
		return "Gestor"
	case RolComercial:
		return "Comercial"
	case RolSoloLectura:
		return "SoloLectura"
	default:
		return "Desconocido"
	}
}

// Usuario is the per-user login identity. The schema carries it in full but
// the active login path compares against ADMIN_EMAIL/ADMIN_PASSWORD instead;
// see service.AuthService for the JWT path built on this table.
type Usuario struct {
	IdUsuario    int        `gorm:"column:IdUsuario;primaryKey;autoIncrement" json:"IdUsuario"`
	Nombre       string     `gorm:"column:Nombre;size:100;not null" json:"Nombre"`
	Apellidos    string     `gorm:"column:Apellidos;size:100;not null" json:"Apellidos"`
	Email        string     `gorm:"column:Email;size:200;not null;uniqueIndex:IX_Usuario_Email" json:"Email"`
	PasswordHash string     `gorm:"column:PasswordHash;not null" json:"-"`
	Rol          RolUsuario `gorm:"column:Rol;not null" json:"Rol"`
	Activo       bool       `gorm:"column:Activo;default:true" json:"Activo"`
	UltimoAcceso *time.Time `gorm:"column:UltimoAcceso" json:"UltimoAcceso"`

	FechaCreacion     time.Time  `gorm:"column:FechaCreacion;not null" json:"FechaCreacion"`
	FechaModificacion *time.Time `gorm:"column:FechaModificacion" json:"FechaModificacion"`
	IdiomaPreferido   *string    `gorm:"column:IdiomaPreferido;size:10;default:es" json:"IdiomaPreferido"`
}

func (Usuario) TableName() string { return "Usuarios" }

func (u *Usuario) NombreCompleto() string {
	return u.Nombre + " " + u.Apellidos
}
