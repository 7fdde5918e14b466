package config

import "strings"

type Cors struct{}

var _ CorsConfig = Cors{}

type AllowedOrigins map[string]struct{}
type nullValue = struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

var devOrigins = AllowedOrigins{
	"http://localhost:3000": nullValue{},
	"http://localhost:5173": nullValue{},
}

func (Cors) GetAllowedOrigins() AllowedOrigins {
	fromEnv := GetEnv("ALLOWED_ORIGINS", "")
	if fromEnv == "" {
		return devOrigins
	}
	origins := AllowedOrigins{}
	for _, origin := range strings.Split(fromEnv, ",") {
		origins[strings.TrimSpace(origin)] = nullValue{}
	}
	return origins
}

func (Cors) GetAllowedMethods() string {
	return "GET, POST, PUT, PATCH, DELETE, OPTIONS"
}

func (Cors) GetAllowedHeaders() string {
	return "Content-Type, Authorization, X-Request-ID, X-Company-Id"
}
