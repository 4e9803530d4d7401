package i18n

import (
	"golang.org/x/text/language"
)

func init() {
	lang := language.MustParse("pt-BR")

	messages.SetString(lang, "command.no_privileges", "Você não está autorizado a executar esta operação.")
	messages.SetString(lang, "command.insufficient_params", "Parâmetros insuficientes para \x02%s\x02.")

	messages.SetString(lang, "listing.commands", "Os seguintes comandos estão disponíveis:")
	messages.SetString(lang, "listing.subcommands", "Os seguintes subcomandos estão disponíveis:")
	messages.SetString(lang, "listing.none", "  <nenhum ao qual você tenha acesso>")

	messages.SetString(lang, "help.prefix", "***** \x02Ajuda de %s\x02 *****")
	messages.SetString(lang, "help.suffix", "***** \x02Fim da Ajuda\x02 *****")
	messages.SetString(lang, "help.no_such_command", "Não existe o comando \x02%s\x02.")
	messages.SetString(lang, "help.no_help_available", "Nenhuma ajuda disponível para \x02%s\x02.")
	messages.SetString(lang, "help.could_not_open", "Não foi possível abrir o arquivo de ajuda de \x02%s\x02.")

	messages.SetString(lang, "login.already_logged_in", "Você já está conectado como \x02%s\x02.")
	messages.SetString(lang, "login.success_account", "Você está conectado como \x02%s\x02.")
	messages.SetString(lang, "login.bad_password", "Senha inválida para \x02%s\x02.")
	messages.SetString(lang, "logout.not_logged_in", "Você não está conectado.")
}
