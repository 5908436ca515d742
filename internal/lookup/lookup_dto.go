package lookup

// Option is one select-widget entry.
type Option struct {
	Value int64  `json:"value" gorm:"column:value"`
	Text  string `json:"text" gorm:"column:text"`
}

// PositionOption additionally carries the owning department so the
// client can filter positions when a department is picked.
type PositionOption struct {
	Value        int64  `json:"value" gorm:"column:value"`
	Text         string `json:"text" gorm:"column:text"`
	DepartmentID int64  `json:"department_id" gorm:"column:department_id"`
}

// Options bundles the three lookup sets the employee form needs.
type Options struct {
	Departments []Option         `json:"departments"`
	Positions   []PositionOption `json:"positions"`
	Banks       []Option         `json:"banks"`
}
