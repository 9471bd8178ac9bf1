package format

import "time"

// Layouts de data por persona. O horário é usado como recebido, sem
// conversão de fuso.
const (
	ApacheLayout = "02-Jan-2006 15:04"
	NginxLayout  = "2006-01-02 15:04"
	CaddyLayout  = "2006-01-02 15:04"
	IISLayout    = "01/02/2006 03:04 PM"
)

// ApacheDate formata no padrão mod_autoindex: 01-Mar-2024 12:00.
func ApacheDate(t time.Time) string { return t.Format(ApacheLayout) }

// NginxDate formata no padrão autoindex do nginx: 2024-03-01 12:00.
func NginxDate(t time.Time) string { return t.Format(NginxLayout) }

// CaddyDate formata no padrão do file_server browse: 2024-03-01 12:00.
func CaddyDate(t time.Time) string { return t.Format(CaddyLayout) }

// IISDate formata no padrão directoryBrowse do IIS, com relógio de 12 horas:
// 03/01/2024 12:00 PM.
func IISDate(t time.Time) string { return t.Format(IISLayout) }
