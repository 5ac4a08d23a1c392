package models

import "time"

type School struct {
	Code      int      `json:"code"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Director  string   `json:"director"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Courses   []Course `json:"courses"`
	Notes     []Note   `json:"notes"`
}

// Course é imutável depois da carga inicial.
type Course struct {
	ID     string `json:"id"`
	Level  string `json:"level"`
	Letter string `json:"letter"`
}

// Note é append-only: entra no início da lista e nunca é editada.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
