package config

type Mail struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Sender   string `json:"sender" yaml:"sender"`
	// Recipient is the site owner's address, where contact messages land.
	Recipient string `json:"recipient" yaml:"recipient"`
}
