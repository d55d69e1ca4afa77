// Package i18n holds every user-facing string in English and Russian.
package i18n

import "strings"

// Lang is a supported interface language.
type Lang string

const (
	EN Lang = "en"
	RU Lang = "ru"
)

// InvalidLangNotice is shown, always in English, when the language token is not recognized.
const InvalidLangNotice = "Invalid choice, defaulting to English."

// ParseLang maps a free-text token to a language. Unknown tokens fall back to
// English with ok=false so the caller can print InvalidLangNotice.
func ParseLang(token string) (lang Lang, ok bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(token))) {
	case RU:
		return RU, true
	case EN:
		return EN, true
	}
	return EN, false
}

// Key identifies a message.
type Key string

const (
	InputDay         Key = "inputDay"
	InputMonth       Key = "inputMonth"
	InputYear        Key = "inputYear"
	UseSavedDate     Key = "useSavedDate"
	EnterNewDate     Key = "enterNewDate"
	UseTodaysDate    Key = "useTodaysDate"
	ReadingDate      Key = "readingDate"
	DateReadFromFile Key = "dateReadFromFile"
	SaveThisDate     Key = "saveThisDate"
	DateSaved        Key = "dateSaved"
	SaveFailed       Key = "saveFailed"
	ErrorInt         Key = "errorInt"
	InFuture         Key = "inFuture"
	ErrorReadingFile Key = "errorReadingFile"
	EnteredDate      Key = "enteredDate"
	FileNotFound     Key = "fileNotFound"
	Day              Key = "day"
	Month            Key = "month"
	Year             Key = "year"
	DaysFrom         Key = "daysFrom"
	WhichIs          Key = "whichIs"
	Years            Key = "years"
	Months           Key = "months"
	And              Key = "and"
	Days             Key = "days"
	ChooseLanguage   Key = "chooseLanguage"
	Since            Key = "since"
)

// Table maps a message key to its per-language text.
type Table map[Key]map[Lang]string

// Text returns the message for key in lang, falling back to English and then
// to the key itself.
func (t Table) Text(key Key, lang Lang) string {
	if byLang, ok := t[key]; ok {
		if s, ok := byLang[lang]; ok {
			return s
		}
		if s, ok := byLang[EN]; ok {
			return s
		}
	}
	return string(key)
}

// Default returns a fresh copy of the built-in message table.
func Default() Table {
	t := make(Table, len(messages))
	for k, v := range messages {
		byLang := make(map[Lang]string, len(v))
		for l, s := range v {
			byLang[l] = s
		}
		t[k] = byLang
	}
	return t
}

var messages = Table{
	InputDay:         {RU: "Введите день", EN: "Enter a day"},
	InputMonth:       {RU: "Введите месяц", EN: "Enter a month"},
	InputYear:        {RU: "Введите год", EN: "Enter a year"},
	UseSavedDate:     {RU: "Использовать сохраненную дату", EN: "Use the saved date"},
	EnterNewDate:     {RU: "Ввести новую дату", EN: "Enter a new date"},
	UseTodaysDate:    {RU: "Использовать и сохранить сегодняшнюю дату", EN: "Use and save today's date"},
	ReadingDate:      {RU: "Чтение даты из файла...", EN: "Reading date from file..."},
	DateReadFromFile: {RU: "Дата прочитана из файла:", EN: "Date read from file:"},
	SaveThisDate:     {RU: "Сохранить эту дату в файл?", EN: "Save this date to file?"},
	DateSaved:        {RU: "Дата сохранена в", EN: "Date saved to"},
	SaveFailed:       {RU: "Не удалось сохранить дату:", EN: "Could not save the date:"},
	ErrorInt:         {RU: "Ошибка ввода.", EN: "Input error."},
	InFuture:         {RU: "Введенная дата в будущем. Пожалуйста, введите корректную дату в прошлом", EN: "The entered date is in the future. Please enter a valid past date"},
	ErrorReadingFile: {RU: "Ошибка чтения файла.", EN: "Error reading date from file."},
	EnteredDate:      {RU: "Вы ввели дату", EN: "You entered the date"},
	FileNotFound:     {RU: "Файл даты не найден", EN: "Date file not found."},
	Day:              {RU: "день", EN: "day"},
	Month:            {RU: "месяц", EN: "month"},
	Year:             {RU: "год", EN: "year"},
	DaysFrom:         {RU: "Дней с введенной даты до сегодня", EN: "Days from the given date to today"},
	WhichIs:          {RU: "Что составляет", EN: "Which is"},
	Years:            {RU: "лет", EN: "years"},
	Months:           {RU: "месяцев", EN: "months"},
	And:              {RU: "и", EN: "and"},
	Days:             {RU: "дней", EN: "days"},
	ChooseLanguage:   {RU: "Выберите язык [ru/en]", EN: "Choose language [ru/en]"},
	Since:            {RU: "Начиная с", EN: "Since"},
}
