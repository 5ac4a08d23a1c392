package validators

import "strings"

// IsContactEmailValid aceita o formato vindo da planilha de extração:
// um ou mais e-mails separados por ';'.
func IsContactEmailValid(raw string) bool {
	parts := strings.Split(raw, ";")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		at := strings.LastIndex(p, "@")
		if at <= 0 || at == len(p)-1 {
			return false
		}
		domain := p[at+1:]
		if !strings.Contains(domain, ".") {
			return false
		}
	}
	return true
}

func IsCoordinateValid(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
