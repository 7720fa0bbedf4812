package main

import (
	"strings"
)

// statsCommand triggers the dynamic status report instead of a canned reply.
const statsCommand = "!stats"

type keywordReply struct {
	keyword string
	reply   string
}

// defaultReplies is consulted in order; the first keyword contained in the
// (lowercased) message wins.
var defaultReplies = []keywordReply{
	{"oi", "Eai, blz?"},
	{"jogar", "Bora, só deixa eu terminar essa."},
	{"sim", "Pode crê"},
	{"não", "De boa, a gente troca ideia outra hora!"},
	{"tchau", "Vlw man, flw"},
	{"obrigado", "Dnd"},
	{"como você está", "Tudo certo por aqui! E contigo?"},
	{"vamos jogar agora", "Estou um pouco ocupado agora, mas depois podemos jogar!"},
	{"qual jogo você gosta", "Gosto de vários jogos, ultimamente tenho jogado alguns clássicos. E você?"},
	{"que horas são", "Boa pergunta! Dá uma olhada aí no relógio do dispositivo."},
	{"qual é seu nome", "Ah, apenas alguém pronto pra jogar. E o seu?"},
	{"está aí?", "Estou por aqui, sim. O que precisa?"},
	{"preciso de ajuda", "Claro, só dizer o que precisa e vamos resolver!"},
	{"vamos marcar um dia", "Boa ideia! Só me dizer quando seria bom para você."},
	{"quais jogos você tem", "Ah, alguns bem legais, depende do que gosta. Quer sugerir algo?"},
	{"qual seu nível?", "Eu diria que sou mediano! Depende do jogo também, e você?"},
}

// AutoReply maps an inbound chat message to a reply. Commands are checked
// before the keyword table; stats produces the dynamic report. ok is false
// when nothing matches and no reply should be sent. The function has no side
// effects; sending the reply is the caller's job.
func AutoReply(message string, stats func() string) (reply string, ok bool) {
	lowered := strings.ToLower(message)

	if strings.Contains(lowered, statsCommand) {
		return stats(), true
	}

	for _, r := range defaultReplies {
		if strings.Contains(lowered, r.keyword) {
			return r.reply, true
		}
	}

	return "", false
}
