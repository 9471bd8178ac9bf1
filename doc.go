// Package listingfixtures gera fixtures de listagem de diretório no formato
// de servidores HTTP reais (Apache, Nginx, IIS e Caddy), para testar parsers
// de índice sem depender dos servidores.
//
// Visão Geral:
// O módulo tem dois lados que compartilham os mesmos renderers:
// 1. Emulador (cmd/emulator): um servidor HTTP por persona, com uma árvore
// fixa em /root/ e o cabeçalho Server de cada produto.
// 2. Coletor (cmd/collector): enumera uma árvore local e grava o HTML que
// cada servidor devolve para cada diretório.
//
// Sub-Pacotes Principais:
//
// 1. pkg/format:
//   - Tamanho compacto (123, 4.5K, 2M) e datas no layout de cada persona.
//
// 2. pkg/listing:
//   - Renderers por persona, tabela fechada de personas e documento HTML.
//   - Extração de links (golang.org/x/net/html) para conferir listagens.
//
// 3. tools/emulator:
//   - Configuração JSON/YAML validada, rotas gorilla/mux e ciclo de vida de
//     cada http.Server.
//
// 4. pkg/crawl e pkg/collector:
//   - Enumeração com exclusões (afero) e coleta com sonda por servidor
//     (resty), gravando listing.html ou listing.error.txt.
//
// 5. envloader, pkg/config, pkg/logger, pkg/observability:
//   - Portas por variável de ambiente, configuração validada, zerolog e
//     métricas Datadog.
//
// Exemplo de Uso:
//
//	# sobe as quatro personas em 127.0.0.1:8101-8104
//	go run ./cmd/emulator
//
//	# coleta as listagens do emulador para ./listings
//	go run ./cmd/collector --target mock --root . --output listings
package listingfixtures
