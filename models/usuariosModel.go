package models

import (
	"time"

	"gorm.io/gorm"
)

// Usuario is a login account. id_persona is optional: service accounts exist
// without a Persona behind them. The stored contraseña is a bcrypt hash and
// is never serialized.
type Usuario struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id_usuario" json:"id_usuario"`
	IDPersona  *int64    `gorm:"column:id_persona;index" json:"id_persona"`
	Usuario    string    `gorm:"column:usuario;size:100;not null;unique;index" json:"usuario"`
	Contrasena string    `gorm:"column:contrasena;size:255;not null" json:"-"`
	Rol        string    `gorm:"column:rol;size:50;not null" json:"rol"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Persona *Persona `gorm:"foreignKey:IDPersona;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// SeedAdminUsuario inserts the initial admin account if no row with that
// username exists yet. hashedPassword must already be a bcrypt hash.
func SeedAdminUsuario(db *gorm.DB, hashedPassword string) error {
	admin := Usuario{
		Usuario:    "admin",
		Contrasena: hashedPassword,
		Rol:        "admin",
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Where(Usuario{Usuario: admin.Usuario}).FirstOrCreate(&admin).Error
	})
}
