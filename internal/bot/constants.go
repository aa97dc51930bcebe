package bot

// Callback data prefixes for inline keyboard actions.
const (
	// CallbackAnswer carries the reference of a cached pending answer.
	CallbackAnswer = "answer:"
)

// Command names.
const (
	CmdStart = "start"
	CmdHelp  = "help"
	CmdQuiz  = "quiz"
)

// Button labels.
const (
	BtnShowAnswer = "Показать ответ"
)

// User-facing replies. Russian is the working language of both question bases.
const (
	msgStart = "Привет! Я задаю вопросы спортивного «Что? Где? Когда?».\n" +
		"Отправьте /quiz, чтобы получить случайный вопрос, или /help для справки."

	msgHelp = "Команды:\n" +
		"/quiz — случайный вопрос\n" +
		"/quiz easy|medium|hard — вопрос нужной сложности\n" +
		"/quiz gotquestions|chgkdb — вопрос из конкретной базы\n" +
		"Параметры можно сочетать в любом порядке: /quiz hard chgkdb\n\n" +
		"Кнопка «Показать ответ» раскрывает ответ с комментарием. " +
		"Сложность действует только для базы gotquestions."

	msgUnknownCommand = "Не знаю такой команды. Попробуйте /help."
	msgLoadFailed     = "Не получилось загрузить вопрос. Попробуйте ещё раз."
	msgAnswerExpired  = "Ответ уже недоступен: вопрос слишком старый."
	msgExpiredLink    = "Полный разбор: "
)
