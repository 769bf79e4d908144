package mission

// table is the 30-day weight-loss cycle. Index i holds day i+1.
var table = [CycleLength]Mission{
	// Awareness and observation (days 1-10)
	{Day: 1, Title: "Água ao acordar", Description: "Beber um copo de água ao acordar, antes de qualquer outra coisa.", Phase: PhaseAwareness},
	{Day: 2, Title: "Comer com atenção", Description: "Comer mais devagar em pelo menos uma refeição, prestando atenção no sabor.", Phase: PhaseAwareness},
	{Day: 3, Title: "Reduzir carboidratos", Description: "Reduzir pães ou massas hoje, sem cortar totalmente.", Phase: PhaseAwareness},
	{Day: 4, Title: "Mais vegetais", Description: "Incluir frutas ou vegetais em pelo menos uma refeição.", Phase: PhaseAwareness},
	{Day: 5, Title: "Fome real", Description: "Evitar beliscar entre as refeições, se não estiver com fome real.", Phase: PhaseAwareness},
	{Day: 6, Title: "Momento de pausa", Description: "Separar 20 minutos do dia para relaxar ou desacelerar.", Phase: PhaseAwareness},
	{Day: 7, Title: "Movimento leve", Description: "Fazer uma caminhada leve ou algum movimento por cerca de 20 minutos.", Phase: PhaseAwareness},
	{Day: 8, Title: "Hidratação", Description: "Beber mais água ao longo do dia, sempre que lembrar.", Phase: PhaseAwareness},
	{Day: 9, Title: "Sem bebidas doces", Description: "Evitar bebidas adoçadas hoje, dando preferência à água.", Phase: PhaseAwareness},
	{Day: 10, Title: "Saciedade", Description: "Priorizar alimentos que tragam mais saciedade.", Phase: PhaseAwareness},

	// Better choices (days 11-20)
	{Day: 11, Title: "Menos açúcar", Description: "Reduzir o consumo de açúcar hoje, sem cobranças.", Phase: PhaseChoices},
	{Day: 12, Title: "Confortável, não cheio", Description: "Parar de comer ao se sentir confortável, não cheio.", Phase: PhaseChoices},
	{Day: 13, Title: "Sono reparador", Description: "Dormir um pouco mais cedo ou melhorar o horário de sono.", Phase: PhaseChoices},
	{Day: 14, Title: "Se movimentar", Description: "Fazer algum movimento leve: alongar, caminhar ou se mexer.", Phase: PhaseChoices},
	{Day: 15, Title: "Água matinal", Description: "Começar o dia com água antes da primeira refeição.", Phase: PhaseChoices},
	{Day: 16, Title: "Troca inteligente", Description: "Trocar um alimento ultraprocessado por algo mais natural.", Phase: PhaseChoices},
	{Day: 17, Title: "Mais fibras", Description: "Incluir fibras em pelo menos uma refeição.", Phase: PhaseChoices},
	{Day: 18, Title: "Escutar o corpo", Description: "Prestar atenção na fome antes de comer.", Phase: PhaseChoices},
	{Day: 19, Title: "Sem repetir", Description: "Evitar repetir o prato, se já estiver satisfeito.", Phase: PhaseChoices},
	{Day: 20, Title: "Respirar", Description: "Separar um momento do dia para respirar e desacelerar.", Phase: PhaseChoices},

	// Autonomy and consistency (days 21-30)
	{Day: 21, Title: "15 minutos ativos", Description: "Movimentar o corpo por pelo menos 15 minutos.", Phase: PhaseAutonomy},
	{Day: 22, Title: "Água vs vontade", Description: "Beber água quando sentir vontade de beliscar.", Phase: PhaseAutonomy},
	{Day: 23, Title: "Jantar leve", Description: "Optar por uma refeição mais leve à noite, se possível.", Phase: PhaseAutonomy},
	{Day: 24, Title: "Noite equilibrada", Description: "Reduzir carboidratos no período noturno, sem radicalismos.", Phase: PhaseAutonomy},
	{Day: 25, Title: "Presença", Description: "Comer com atenção, evitando distrações como celular ou TV.", Phase: PhaseAutonomy},
	{Day: 26, Title: "Escolhas conscientes", Description: "Escolher alimentos que mantenham a saciedade por mais tempo.", Phase: PhaseAutonomy},
	{Day: 27, Title: "Pausa consciente", Description: "Evitar comer por ansiedade, buscando outra pausa quando possível.", Phase: PhaseAutonomy},
	{Day: 28, Title: "Prazer e leveza", Description: "Fazer algo que gere prazer e relaxamento.", Phase: PhaseAutonomy},
	{Day: 29, Title: "Dia de escolhas", Description: "Manter boas escolhas ao longo do dia, sem cobrança.", Phase: PhaseAutonomy},
	{Day: 30, Title: "Reconhecer a constância", Description: "Reconhecer sua constância e decidir continuar.", Phase: PhaseAutonomy},
}

// CycleCompleteMessage is shown when the final day of a cycle is completed.
const CycleCompleteMessage = "Ciclo concluído. Um novo ciclo começa amanhã. Continue no seu ritmo."

// encouragements is the pool drawn from on every other day.
var encouragements = []string{
	"Missão concluída. Um passo consistente.",
	"Constância gera resultados.",
	"Pequenas escolhas constroem mudanças.",
	"Você está mantendo o ritmo.",
	"Mais um dia de constância.",
	"Continue assim, um dia de cada vez.",
	"Seu corpo agradece cada escolha.",
	"Consistência é a chave.",
}
