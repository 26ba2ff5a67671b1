package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
}

type AdminConfig struct {
	Login        string `yaml:"login"`
	PasswordHash string `yaml:"password_hash"`
	AdminToken   string `yaml:"admin_token"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TTL : времена жизни в секундах
type TTL struct {
	FileContent int `yaml:"fileContent"`
}

// FileCacheConfig : настройки кэша содержимого файлов
// Backend выбирает реализацию: "memory" либо "redis"
// ChunkSize — размер блока при конвертации байтов в base64
type FileCacheConfig struct {
	Backend   string `yaml:"backend"`
	ChunkSize int    `yaml:"chunkSize"`
}
