package models

import (
	"time"
)

// EstadoProgramada is the state every new cita is created with.
const EstadoProgramada = "Programada"

// Persona is the root identity record. Pacientes, Doctores and Usuarios all
// hang off a Persona through id_persona.
type Persona struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id_persona" json:"id_persona"`
	Nombres         string    `gorm:"column:nombres;not null" json:"nombres"`
	Apellidos       string    `gorm:"column:apellidos;not null;index" json:"apellidos"`
	DNI             string    `gorm:"column:dni;size:20;not null;unique" json:"dni"`
	Telefono        *string   `gorm:"column:telefono" json:"telefono"`
	Direccion       *string   `gorm:"column:direccion" json:"direccion"`
	FechaNacimiento *string   `gorm:"column:fecha_nacimiento" json:"fecha_nacimiento"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Pacientes []Paciente `gorm:"foreignKey:IDPersona;references:ID" json:"-"`
	Doctores  []Doctor   `gorm:"foreignKey:IDPersona;references:ID" json:"-"`
	Usuarios  []Usuario  `gorm:"foreignKey:IDPersona;references:ID" json:"-"`
}

func (Persona) TableName() string {
	return "personas"
}

// Paciente model. The unique index on id_persona keeps the relation
// one-to-one: a Persona holds at most one Paciente record.
type Paciente struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id_paciente" json:"id_paciente"`
	IDPersona  int64     `gorm:"column:id_persona;not null;uniqueIndex" json:"id_persona"`
	TipoSangre *string   `gorm:"column:tipo_sangre;size:10" json:"tipo_sangre"`
	Alergias   *string   `gorm:"column:alergias" json:"alergias"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Persona   Persona           `gorm:"foreignKey:IDPersona;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Citas     []Cita            `gorm:"foreignKey:IDPaciente;references:ID" json:"-"`
	Historial []HistorialMedico `gorm:"foreignKey:IDPaciente;references:ID" json:"-"`
}

func (Paciente) TableName() string {
	return "pacientes"
}

// Doctor model, one-to-one with Persona like Paciente.
type Doctor struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id_doctor" json:"id_doctor"`
	IDPersona      int64     `gorm:"column:id_persona;not null;uniqueIndex" json:"id_persona"`
	Especialidad   string    `gorm:"column:especialidad;size:100;not null" json:"especialidad"`
	NroColegiatura string    `gorm:"column:nro_colegiatura;size:50;not null" json:"nro_colegiatura"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Persona   Persona           `gorm:"foreignKey:IDPersona;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Citas     []Cita            `gorm:"foreignKey:IDDoctor;references:ID" json:"-"`
	Historial []HistorialMedico `gorm:"foreignKey:IDDoctor;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctores"
}

// Cita is a scheduled encounter between a Paciente and a Doctor.
type Cita struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id_cita" json:"id_cita"`
	IDPaciente int64     `gorm:"column:id_paciente;not null;index" json:"id_paciente"`
	IDDoctor   int64     `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	Fecha      string    `gorm:"column:fecha;size:20;not null;index" json:"fecha"`
	Hora       string    `gorm:"column:hora;size:10;not null" json:"hora"`
	Motivo     *string   `gorm:"column:motivo" json:"motivo"`
	Estado     string    `gorm:"column:estado;size:30;not null;default:Programada" json:"estado"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Paciente Paciente `gorm:"foreignKey:IDPaciente;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor   Doctor   `gorm:"foreignKey:IDDoctor;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Cita) TableName() string {
	return "citas"
}

// HistorialMedico is an append-mostly record of a clinical encounter.
type HistorialMedico struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id_historial" json:"id_historial"`
	IDPaciente  int64     `gorm:"column:id_paciente;not null;index" json:"id_paciente"`
	IDDoctor    int64     `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	Fecha       string    `gorm:"column:fecha;size:20;not null;index" json:"fecha"`
	Diagnostico string    `gorm:"column:diagnostico;not null" json:"diagnostico"`
	Tratamiento *string   `gorm:"column:tratamiento" json:"tratamiento"`
	Receta      *string   `gorm:"column:receta" json:"receta"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`

	Paciente Paciente `gorm:"foreignKey:IDPaciente;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor   Doctor   `gorm:"foreignKey:IDDoctor;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (HistorialMedico) TableName() string {
	return "historial_medico"
}
