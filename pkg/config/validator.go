package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *CollectorConf) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *CollectorConf) error {
	// 1. Agendamento precisa ser uma expressão cron válida
	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			return fmt.Errorf("agendamento inválido '%s': %w", cfg.Schedule, err)
		}
	}

	// 2. Exclusões são nomes de diretório, não caminhos
	for _, name := range cfg.Exclude {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("exclusão '%s' deve ser um nome de diretório, não um caminho", name)
		}
	}

	// 3. A saída não pode ser a própria raiz varrida
	root, errRoot := filepath.Abs(cfg.Root)
	out, errOut := filepath.Abs(cfg.Output)
	if errRoot == nil && errOut == nil && root == out {
		return fmt.Errorf("diretório de saída '%s' não pode ser igual à raiz varrida", cfg.Output)
	}

	return nil
}
