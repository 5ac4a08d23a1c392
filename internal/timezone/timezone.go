package timezone

import "time"

// Política de fuso única e explícita: todo parse, chave de data e
// janela de conflito usa este relógio de parede, nunca o fuso ambiente
// do sistema.
const DefaultTimezone = "America/Santiago"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
