// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package envloader carrega variáveis de ambiente para campos de uma struct
// usando as tags `env` (nome da variável) e `envDefault` (valor padrão).
//
// Tipos suportados: string, inteiros, bool, float, time.Duration e []string
// (separado por vírgula). Structs aninhadas e ponteiros para struct são
// percorridos recursivamente. Uma variável definida porém vazia é tratada
// como ausente.
//
// O coletor usa o pacote para as sobrescritas de porta:
//
//	type Ports struct {
//		Caddy int `env:"FOLDERAPI_PORT_CADDY" envDefault:"8080"`
//		Nginx int `env:"FOLDERAPI_PORT_NGINX" envDefault:"8081"`
//	}
//
//	var p Ports
//	if err := envloader.Load(&p); err != nil {
//		var fe *envloader.FieldError
//		if errors.As(err, &fe) {
//			log.Printf("valor inválido em %s", fe.EnvVar)
//		}
//	}
//
// LoadWith aceita uma LookupFunc, útil em testes que não querem tocar o
// ambiente do processo.
package envloader
