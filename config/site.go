package config

type Site struct {
	ImagesDir string `json:"images_dir" yaml:"images_dir"`
	CertsDir  string `json:"certs_dir" yaml:"certs_dir"`
}
