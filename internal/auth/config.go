package auth

// EnvConfig defines auth fields parsed from environment variables
type EnvConfig struct {
	JWTKey     string `env:"JWT_KEY,required,notEmpty"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"12"`
}
