package validation

import (
	"fmt"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
)

// UserRules validates user registration and update bodies. emailFree
// reports whether an email is available to the user being written.
func UserRules(emailFree Predicate) Ruleset {
	return Ruleset{
		{
			Param: "nome",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o nome do usuário", Bail: true},
				{Fn: Tag("alpha_space"), Msg: "O nome do usuário deve conter apenas texto"},
				{Fn: Tag("min=3"), Msg: "O nome do usuário é muito curto. Informe ao menos 3 caracteres"},
				{Fn: Tag("max=100"), Msg: "O nome do usuário é muito longo. Informe no máximo 100 caracteres"},
			},
		},
		{
			Param: "email",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o email do usuário", Bail: true},
				{Fn: Tag("lowercase"), Msg: "O email não pode conter caracteres maiúsculos"},
				{Fn: Tag("email"), Msg: "O email do usuário deve ser válido"},
				{Fn: emailFree, Msgf: func(v any) string {
					return fmt.Sprintf("O email %s já está informado em outro usuário", toString(v))
				}},
			},
		},
		{
			Param:  "senha",
			Redact: true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar a senha do usuário", Bail: true},
				{Fn: Tag("min=6"), Msg: "A senha deve conter no mínimo 6 caracteres"},
				{Fn: Tag("strong_password"), Msg: "A senha deve conter ao menos 1 letra maiúscula, 1 número e 1 símbolo"},
				{Fn: MaxBytes(72), Msg: "A senha deve conter no máximo 72 caracteres"},
			},
		},
		{
			Param:   "ativo",
			Default: func(Input) any { return true },
			Checks: []Check{
				{Fn: NotString(), Msg: "O valor informado para o campo ativo não pode ser um texto"},
				{Fn: NotNumber(), Msg: "O valor informado para o campo ativo não pode ser um número"},
				{Fn: IsBoolean(), Msg: "O valor informado para o campo ativo deve ser um booleano (True ou False)"},
			},
		},
		{
			Param:   "tipo",
			Trim:    true,
			Default: func(Input) any { return string(domain.DefaultRole) },
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o tipo do usuário", Bail: true},
				{Fn: Tag("oneof=Admin Cliente"), Msg: "O tipo informado deve ser Admin ou Cliente"},
			},
		},
		{
			Param:   "avatar",
			Trim:    true,
			Default: func(in Input) any { return domain.AvatarURL(in.String("nome")) },
			Checks: []Check{
				{Fn: Tag("url"), Msg: "O endereço do avatar deve ser uma URL válida"},
			},
		},
	}
}

// VehicleRules validates vehicle create and update bodies.
func VehicleRules() Ruleset {
	return Ruleset{
		{
			Param: "marca",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar a marca do veiculo", Bail: true},
				{Fn: Tag("min=2"), Msg: "A marca informada é muito curta. Informe ao menos 2 caracteres"},
				{Fn: Tag("max=50"), Msg: "A marca informada é muito longa. Informe no máximo 50 caracteres"},
			},
		},
		{
			Param: "modelo",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o modelo", Bail: true},
				{Fn: Tag("min=2"), Msg: "O nome do modelo é muito curto. Informe ao menos 2 caracteres"},
				{Fn: Tag("max=100"), Msg: "O nome do modelo é muito longo. Informe no máximo 100 caracteres"},
			},
		},
		{
			Param: "cor",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar a cor", Bail: true},
				{Fn: Tag("min=3"), Msg: "O nome da cor é muito curto. Informe ao menos 3 caracteres"},
				{Fn: Tag("max=100"), Msg: "O nome da cor é muito longo. Informe no máximo 100 caracteres"},
			},
		},
		{
			Param: "placa",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar a placa", Bail: true},
				{Fn: Tag("plate"), Msg: "A placa está errada. Exemplo: AAA9999"},
			},
		},
		{
			Param: "renavam",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o renavam", Bail: true},
				{Fn: Tag("number"), Msg: "O renavam só pode conter números"},
				{Fn: Tag("min=9"), Msg: "O renavam é muito curto. Informe ao menos 9 caracteres"},
				{Fn: Tag("max=11"), Msg: "O renavam é muito longo. Informe no máximo 11 caracteres"},
			},
		},
		{
			Param: "razao_social",
			Trim:  true,
			Checks: []Check{
				{Fn: Tag("omitempty,max=150"), Msg: "A razão social é muito longa. Informe no máximo 150 caracteres"},
			},
		},
	}
}

// LoginRules validates the credentials of a login request.
func LoginRules() Ruleset {
	return Ruleset{
		{
			Param: "email",
			Trim:  true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar o email do usuário para o login", Bail: true},
				{Fn: Tag("email"), Msg: "O email para validar o login deve ser válido"},
			},
		},
		{
			Param:  "senha",
			Redact: true,
			Checks: []Check{
				{Fn: Required(), Msg: "É obrigatório informar a senha do usuário para o login", Bail: true},
				{Fn: Tag("min=6"), Msg: "A senha deve conter no mínimo 6 caracteres"},
			},
		},
	}
}
