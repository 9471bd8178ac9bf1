package collector

import (
	"fmt"

	"github.com/raywall/listing-fixtures/envloader"
)

// Server é um backend de listagem a ser coletado.
type Server struct {
	Name     string
	Host     string
	Port     int
	BasePath string
}

// BaseURL devolve a URL do diretório raiz do servidor.
func (s Server) BaseURL() string {
	base := s.BasePath
	if base == "" {
		base = "/"
	}
	return fmt.Sprintf("http://%s:%d%s", s.Host, s.Port, base)
}

// Ports agrupa as portas dos servidores reais, com sobrescrita por ambiente.
type Ports struct {
	Caddy  int `env:"FOLDERAPI_PORT_CADDY" envDefault:"8080"`
	Nginx  int `env:"FOLDERAPI_PORT_NGINX" envDefault:"8081"`
	Apache int `env:"FOLDERAPI_PORT_APACHE" envDefault:"8082"`
	IIS    int `env:"FOLDERAPI_PORT_IIS" envDefault:"8083"`
}

// DefaultPorts devolve as portas padrão sem consultar o ambiente.
func DefaultPorts() Ports {
	return Ports{Caddy: 8080, Nginx: 8081, Apache: 8082, IIS: 8083}
}

// Servers monta a lista na ordem de coleta: caddy, nginx, apache, iis.
func (p Ports) Servers() []Server {
	return []Server{
		{Name: "caddy", Host: "localhost", Port: p.Caddy, BasePath: "/"},
		{Name: "nginx", Host: "localhost", Port: p.Nginx, BasePath: "/"},
		{Name: "apache", Host: "localhost", Port: p.Apache, BasePath: "/"},
		{Name: "iis", Host: "localhost", Port: p.IIS, BasePath: "/"},
	}
}

// DefaultServers são os servidores reais nas portas padrão.
func DefaultServers() []Server {
	return DefaultPorts().Servers()
}

// ResolvePorts aplica as variáveis FOLDERAPI_PORT_*. Com um valor inválido
// devolve as portas padrão junto com o erro.
func ResolvePorts() (Ports, error) {
	var p Ports
	if err := envloader.Load(&p); err != nil {
		return DefaultPorts(), fmt.Errorf("sobrescrita de porta inválida: %w", err)
	}
	return p, nil
}

// MockServers aponta para o emulador de personas.
func MockServers() []Server {
	return []Server{
		{Name: "apache", Host: "localhost", Port: 8101, BasePath: "/root/"},
		{Name: "nginx", Host: "localhost", Port: 8102, BasePath: "/root/"},
		{Name: "iis", Host: "localhost", Port: 8103, BasePath: "/root/"},
		{Name: "caddy", Host: "localhost", Port: 8104, BasePath: "/root/"},
	}
}
