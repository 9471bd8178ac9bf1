package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config representa o arquivo de configuração do emulador (lista de personas).
type Config []ServerConfig

// DefaultConfig devolve as quatro personas nas portas 8101-8104.
func DefaultConfig() Config {
	return Config{
		{Persona: "apache", Host: "127.0.0.1", Port: 8101},
		{Persona: "nginx", Host: "127.0.0.1", Port: 8102},
		{Persona: "iis", Host: "127.0.0.1", Port: 8103},
		{Persona: "caddy", Host: "127.0.0.1", Port: 8104},
	}
}

// Load carrega a configuração do arquivo padrão (emulator.json) ou via variável de ambiente.
// Retorna a configuração padrão se o arquivo não puder ser lido, para não quebrar a inicialização.
func Load() Config {
	path := os.Getenv("EMULATOR_CONFIG_PATH")
	if path == "" {
		path = "emulator.json"
	}

	var cfg Config
	if err := cfg.LoadFromFile(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Não foi possível carregar a configuração. Usando personas padrão.")
		return DefaultConfig()
	}

	return cfg
}

// LoadFromFile lê JSON ou YAML (pela extensão) e valida o resultado.
func (cfg *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	var parsed Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("erro ao parsear yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("erro ao parsear json: %w", err)
		}
	}

	for i := range parsed {
		if parsed[i].Host == "" {
			parsed[i].Host = "127.0.0.1"
		}
	}

	if err := parsed.Validate(); err != nil {
		return err
	}

	*cfg = parsed
	return nil
}

// Validate aplica as regras estruturais (tags) e semânticas: cada persona
// aparece uma única vez e cada endereço é exclusivo.
func (cfg Config) Validate() error {
	if len(cfg) == 0 {
		return fmt.Errorf("configuração vazia: nenhuma persona definida")
	}

	validate := validator.New()
	var errMsgs []string
	for i, s := range cfg {
		if err := validate.Struct(s); err != nil {
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				for _, e := range validationErrors {
					errMsgs = append(errMsgs, fmt.Sprintf("servidor[%d]: campo '%s' falhou na regra '%s'", i, e.Field(), e.Tag()))
				}
				continue
			}
			return fmt.Errorf("erro de validação estrutural: %w", err)
		}
	}
	if len(errMsgs) > 0 {
		return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
	}

	personas := make(map[string]bool)
	addrs := make(map[string]bool)
	for _, s := range cfg {
		if personas[s.Persona] {
			return fmt.Errorf("persona duplicada: '%s'", s.Persona)
		}
		personas[s.Persona] = true

		if addrs[s.Addr()] {
			return fmt.Errorf("endereço duplicado: '%s'", s.Addr())
		}
		addrs[s.Addr()] = true
	}

	return nil
}
