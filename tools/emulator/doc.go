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
// Package emulator sobe servidores HTTP que imitam as páginas de listagem de
// diretório de quatro servidores reais (Apache, Nginx, IIS e Caddy).
//
// Visão Geral:
// Cada persona atende uma árvore sintética fixa: /root/ com alguns arquivos e
// exatamente um subdiretório (/root/sub/), que só contém arquivos. O markup,
// o formato de data, a representação do tamanho e o header Server variam por
// persona, reproduzindo a impressão digital que um detector de formato de
// listagem precisa aprender a distinguir.
//
// Funcionalidades Principais:
//   - Multi-Server: uma porta e um http.Server por persona (8101-8104 por padrão).
//   - Isolamento: falhas ou panics de uma persona não afetam as demais.
//   - HEAD: qualquer caminho sob /root/ responde 200 com headers fixos e sem corpo.
//   - Encerramento cooperativo: cancelar o contexto derruba todas as personas.
//
// Estrutura de Configuração (JSON ou YAML):
//
//	[
//	  { "persona": "apache", "port": 8101 },
//	  { "persona": "nginx",  "port": 8102 },
//	  { "persona": "iis",    "port": 8103 },
//	  { "persona": "caddy",  "port": 8104, "host": "0.0.0.0" }
//	]
//
// Exemplo de Inicialização Programática (Go):
//
//	package main
//
//	import (
//	    "context"
//	    "sync"
//
//	    "github.com/raywall/listing-fixtures/tools/emulator/config"
//	    "github.com/raywall/listing-fixtures/tools/emulator/fixtures"
//	    "github.com/rs/zerolog/log"
//	)
//
//	func main() {
//	    cfg := config.Load()
//	    tree := fixtures.Default()
//
//	    var wg sync.WaitGroup
//	    for _, server := range cfg {
//	        wg.Add(1)
//	        go func(s config.ServerConfig) {
//	            defer wg.Done()
//	            if err := s.Start(context.Background(), tree, log.Logger); err != nil {
//	                log.Error().Err(err).Send()
//	            }
//	        }(server)
//	    }
//	    wg.Wait()
//	}
package emulator
