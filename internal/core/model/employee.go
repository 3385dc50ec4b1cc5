package model

// Employee is an entry in the employee directory.
type Employee struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// ActivityEntry is one recorded clock action.
type ActivityEntry struct {
	ID          string `yaml:"-"`
	Type        Action `yaml:"type"`
	Time        string `yaml:"time"`
	Description string `yaml:"description"`
}
