package extraction

// RawSchoolRecord é uma linha crua depositada pelo pipeline de extração
// (uma linha por curso; os dados da escola se repetem).
type RawSchoolRecord struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Code               int     `gorm:"column:codigo" json:"codigo"`
	SchoolName         string  `gorm:"column:nombre_colegio" json:"nombre_colegio"`
	CourseLevel        string  `gorm:"column:curso" json:"curso"`
	CourseLetter       string  `gorm:"column:letra" json:"letra"`
	Phone              string  `gorm:"column:telefono" json:"telefono"`
	Email              string  `gorm:"column:correo" json:"correo"`
	DirectorFirstNames string  `gorm:"column:nombres_director" json:"nombres_director"`
	DirectorLastName   string  `gorm:"column:apellido_director" json:"apellido_director"`
	Latitude           float64 `gorm:"column:latitud" json:"latitud"`
	Longitude          float64 `gorm:"column:longitud" json:"longitud"`
}

func (RawSchoolRecord) TableName() string {
	return "raw_school_records"
}
