package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistroBitacora documents one admin mutation on the agenda.
type RegistroBitacora struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Accion    string             `json:"accion" bson:"accion"`
	CitaID    string             `json:"citaId" bson:"cita_id"`
	Estado    string             `json:"estado,omitempty" bson:"estado,omitempty"`
	Motivo    string             `json:"motivo,omitempty" bson:"motivo,omitempty"`
	ScreenID  string             `json:"screenId,omitempty" bson:"screen_id,omitempty"`
	RequestID string             `json:"requestId,omitempty" bson:"request_id,omitempty"`
	CreadoEn  time.Time          `json:"creadoEn" bson:"creado_en"`
}
