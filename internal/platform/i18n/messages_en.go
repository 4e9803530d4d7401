package i18n

import (
	"golang.org/x/text/language"
)

func init() {
	lang := language.AmericanEnglish

	// Command dispatch
	messages.SetString(lang, "command.invalid", "Invalid command. Use \x02/msg %s HELP\x02 for a command listing.")
	messages.SetString(lang, "command.no_privileges", "You are not authorized to perform this operation.")
	messages.SetString(lang, "command.insufficient_params", "Insufficient parameters for \x02%s\x02.")
	messages.SetString(lang, "command.help_hint", "Use \x02/msg %s HELP %s\x02 for more information.")

	// Command listings
	messages.SetString(lang, "listing.commands", "The following commands are available:")
	messages.SetString(lang, "listing.subcommands", "The following subcommands are available:")
	messages.SetString(lang, "listing.additional_commands", "The following additional commands are available:")
	messages.SetString(lang, "listing.additional_subcommands", "The following additional subcommands are available:")
	messages.SetString(lang, "listing.none", "  <none you have access to>")

	// Help renderer
	messages.SetString(lang, "help.prefix", "***** \x02%s Help\x02 *****")
	messages.SetString(lang, "help.suffix", "***** \x02End of Help\x02 *****")
	messages.SetString(lang, "help.no_such_command", "No such command \x02%s\x02.")
	messages.SetString(lang, "help.no_help_available", "No help available for \x02%s\x02.")
	messages.SetString(lang, "help.could_not_open", "Could not open help file for \x02%s\x02.")
	messages.SetString(lang, "help.locations_both", "If you're having trouble, or you need some additional help,\nyou may want to join the help channel '%s', or visit the\nhelp webpage <%s>")
	messages.SetString(lang, "help.locations_chan", "If you're having trouble, or you need some additional help,\nyou may want to join the help channel '%s'")
	messages.SetString(lang, "help.locations_url", "If you're having trouble, or you need some additional help,\nyou may want to visit the help webpage\n<%s>")
	messages.SetString(lang, "help.invalid_command", "Invalid %s command. Use \x02/msg %s HELP\x02 for a %s command listing.")
	messages.SetString(lang, "help.invalid_subcommand", "Invalid %s %s subcommand. Use \x02/msg %s HELP %s\x02 for a %s %s subcommand listing.")
	messages.SetString(lang, "help.moreinfo", "For more information on a %s command, type:")
	messages.SetString(lang, "help.moreinfo_sub", "For more information on a %s %s subcommand, type:")
	messages.SetString(lang, "help.verbose_list", "For a verbose listing of all %s commands, type:")

	// Login and logout
	messages.SetString(lang, "login.syntax_account", "Syntax: LOGIN <account> <password>")
	messages.SetString(lang, "login.syntax_nick", "Syntax: IDENTIFY [nick] <password>")
	messages.SetString(lang, "login.not_registered_account", "\x02%s\x02 is not a registered account.")
	messages.SetString(lang, "login.not_registered_nick", "\x02%s\x02 is not a registered nickname.")
	messages.SetString(lang, "login.denied_account", "You cannot log in as \x02%s\x02 because the server configuration disallows it.")
	messages.SetString(lang, "login.denied_nick", "You cannot identify to \x02%s\x02 because the server configuration disallows it.")
	messages.SetString(lang, "login.frozen_account", "You cannot log in as \x02%s\x02 because the account has been frozen.")
	messages.SetString(lang, "login.frozen_nick", "You cannot identify to \x02%s\x02 because the nickname has been frozen.")
	messages.SetString(lang, "login.password_disabled", "Password authentication is disabled for this account.")
	messages.SetString(lang, "login.already_logged_in", "You are already logged in as \x02%s\x02.")
	messages.SetString(lang, "login.check_email", "Please check your email for instructions to complete your registration.")
	messages.SetString(lang, "login.too_many", "There are already \x02%d\x02 sessions logged in to \x02%s\x02 (maximum allowed: %d).")
	messages.SetString(lang, "login.session_nicks", "Logged in nicks are: %s")
	messages.SetString(lang, "login.logged_out_of", "You have been logged out of \x02%s\x02.")
	messages.SetString(lang, "login.success_account", "You are now logged in as \x02%s\x02.")
	messages.SetString(lang, "login.success_nick", "You are now identified for \x02%s\x02.")
	messages.SetString(lang, "login.plain_password_warning", "Warning: Your password is not encrypted.")
	messages.SetString(lang, "login.bad_password", "Invalid password for \x02%s\x02.")
	messages.SetString(lang, "logout.not_logged_in", "You are not logged in.")

	// Command summaries
	messages.SetString(lang, "cmd.login.desc", "Authenticates to a services account.")
	messages.SetString(lang, "cmd.identify.desc", "Identifies to services for a nickname.")
	messages.SetString(lang, "cmd.logout.desc", "Logs your services session out.")
	messages.SetString(lang, "cmd.help.desc", "Displays contextual help information.")
}
