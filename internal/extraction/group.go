package extraction

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/school-scheduler/internal/models"
)

// Group agrega as linhas cruas (uma por curso) na forma School/Course,
// preservando a ordem de primeira aparição de cada escola.
func Group(rows []RawSchoolRecord) []models.School {
	var schools []models.School
	index := make(map[int]int)

	for _, row := range rows {
		i, seen := index[row.Code]
		if !seen {
			schools = append(schools, models.School{
				Code:      row.Code,
				Name:      row.SchoolName,
				Phone:     row.Phone,
				Email:     row.Email,
				Director:  directorName(row),
				Latitude:  row.Latitude,
				Longitude: row.Longitude,
				Notes:     []models.Note{},
			})
			i = len(schools) - 1
			index[row.Code] = i
		}

		schools[i].Courses = append(schools[i].Courses, models.Course{
			ID:     fmt.Sprintf("%s-%s", row.CourseLevel, row.CourseLetter),
			Level:  row.CourseLevel,
			Letter: row.CourseLetter,
		})
	}

	return schools
}

func directorName(row RawSchoolRecord) string {
	return strings.TrimSpace(row.DirectorFirstNames + " " + row.DirectorLastName)
}
