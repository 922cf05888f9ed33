package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectFile        = "select_file"
	KeySubmit            = "submit"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyNoFileSelected    = "no_file_selected"
	KeyPleaseSelectFile  = "please_select_file"
	KeyUploading         = "uploading"
	KeyAlreadyInFlight   = "already_in_flight"
	KeyAnalysisComplete  = "analysis_complete"
	KeyAnalysisFailed    = "analysis_failed"
	KeySaveReport        = "save_report"
	KeyReportSaved       = "report_saved"
	KeyErrorSavingReport = "error_saving_report"
	KeyReveal            = "reveal"
	KeyServerURL         = "server_url"
	KeyRequestTimeout    = "request_timeout"
	KeyAnalysisMode      = "analysis_mode"
	KeyModeGrade         = "mode_grade"
	KeyModeParse         = "mode_parse"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyTestConnection    = "test_connection"
	KeyConnectionOK      = "connection_ok"
	KeyConnectionFailed  = "connection_failed"
	KeySettingsSaved     = "settings_saved"
	KeyOverallScore      = "overall_score"
	KeySectionScores     = "section_scores"
	KeyStrengths         = "strengths"
	KeyTips              = "tips"
	KeyDetailedFeedback  = "detailed_feedback"
	KeyParsedHeading     = "parsed_heading"
	KeyPersonalInfo      = "personal_info"
	KeyExperience        = "experience"
	KeyEducation         = "education"
	KeySkills            = "skills"
	KeyProjects          = "projects"
	KeyFieldName         = "field_name"
	KeyFieldEmail        = "field_email"
	KeyFieldPhone        = "field_phone"
	KeyFieldAddress      = "field_address"
	KeyFieldLinkedIn     = "field_linkedin"
	KeyFieldGitHub       = "field_github"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Resume Grader",
		KeySelectFile:        "Choose PDF",
		KeySubmit:            "Grade Resume",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyNoFileSelected:    "No resume selected",
		KeyPleaseSelectFile:  "Please choose a PDF resume first",
		KeyUploading:         "Uploading resume...",
		KeyAlreadyInFlight:   "A submission is already in progress",
		KeyAnalysisComplete:  "Analysis complete",
		KeyAnalysisFailed:    "Analysis failed",
		KeySaveReport:        "Save Report",
		KeyReportSaved:       "Report saved",
		KeyErrorSavingReport: "Error saving report",
		KeyReveal:            "Reveal",
		KeyServerURL:         "Grading Service URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyAnalysisMode:      "Analysis Mode",
		KeyModeGrade:         "Parse and grade",
		KeyModeParse:         "Parse only",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyTestConnection:    "Test Connection",
		KeyConnectionOK:      "Grading service is reachable",
		KeyConnectionFailed:  "Grading service is unreachable",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyOverallScore:      "Overall Score",
		KeySectionScores:     "Section Scores",
		KeyStrengths:         "Strengths",
		KeyTips:              "Tips",
		KeyDetailedFeedback:  "Detailed Feedback",
		KeyParsedHeading:     "Parsed Resume",
		KeyPersonalInfo:      "Personal Info",
		KeyExperience:        "Experience",
		KeyEducation:         "Education",
		KeySkills:            "Skills",
		KeyProjects:          "Projects",
		KeyFieldName:         "Name",
		KeyFieldEmail:        "Email",
		KeyFieldPhone:        "Phone",
		KeyFieldAddress:      "Address",
		KeyFieldLinkedIn:     "LinkedIn",
		KeyFieldGitHub:       "GitHub",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Оценка резюме",
		KeySelectFile:        "Выбрать PDF",
		KeySubmit:            "Оценить резюме",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyNoFileSelected:    "Резюме не выбрано",
		KeyPleaseSelectFile:  "Сначала выберите PDF-резюме",
		KeyUploading:         "Загрузка резюме...",
		KeyAlreadyInFlight:   "Отправка уже выполняется",
		KeyAnalysisComplete:  "Анализ завершён",
		KeyAnalysisFailed:    "Анализ не удался",
		KeySaveReport:        "Сохранить отчёт",
		KeyReportSaved:       "Отчёт сохранён",
		KeyErrorSavingReport: "Ошибка сохранения отчёта",
		KeyReveal:            "Показать",
		KeyServerURL:         "URL сервиса оценки",
		KeyRequestTimeout:    "Тайм-аут запроса (секунды)",
		KeyAnalysisMode:      "Режим анализа",
		KeyModeGrade:         "Разбор и оценка",
		KeyModeParse:         "Только разбор",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyTestConnection:    "Проверить соединение",
		KeyConnectionOK:      "Сервис оценки доступен",
		KeyConnectionFailed:  "Сервис оценки недоступен",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyOverallScore:      "Общий балл",
		KeySectionScores:     "Баллы по разделам",
		KeyStrengths:         "Сильные стороны",
		KeyTips:              "Рекомендации",
		KeyDetailedFeedback:  "Подробный отзыв",
		KeyParsedHeading:     "Разобранное резюме",
		KeyPersonalInfo:      "Личные данные",
		KeyExperience:        "Опыт работы",
		KeyEducation:         "Образование",
		KeySkills:            "Навыки",
		KeyProjects:          "Проекты",
		KeyFieldName:         "Имя",
		KeyFieldEmail:        "Эл. почта",
		KeyFieldPhone:        "Телефон",
		KeyFieldAddress:      "Адрес",
		KeyFieldLinkedIn:     "LinkedIn",
		KeyFieldGitHub:       "GitHub",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Avaliador de Currículos",
		KeySelectFile:        "Escolher PDF",
		KeySubmit:            "Avaliar Currículo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyNoFileSelected:    "Nenhum currículo selecionado",
		KeyPleaseSelectFile:  "Escolha primeiro um currículo em PDF",
		KeyUploading:         "Enviando currículo...",
		KeyAlreadyInFlight:   "Um envio já está em andamento",
		KeyAnalysisComplete:  "Análise concluída",
		KeyAnalysisFailed:    "Falha na análise",
		KeySaveReport:        "Salvar Relatório",
		KeyReportSaved:       "Relatório salvo",
		KeyErrorSavingReport: "Erro ao salvar relatório",
		KeyReveal:            "Revelar",
		KeyServerURL:         "URL do Serviço de Avaliação",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeyAnalysisMode:      "Modo de Análise",
		KeyModeGrade:         "Analisar e avaliar",
		KeyModeParse:         "Somente analisar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyTestConnection:    "Testar Conexão",
		KeyConnectionOK:      "Serviço de avaliação acessível",
		KeyConnectionFailed:  "Serviço de avaliação inacessível",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyOverallScore:      "Pontuação Geral",
		KeySectionScores:     "Pontuação por Seção",
		KeyStrengths:         "Pontos Fortes",
		KeyTips:              "Dicas",
		KeyDetailedFeedback:  "Comentários Detalhados",
		KeyParsedHeading:     "Currículo Analisado",
		KeyPersonalInfo:      "Dados Pessoais",
		KeyExperience:        "Experiência",
		KeyEducation:         "Educação",
		KeySkills:            "Habilidades",
		KeyProjects:          "Projetos",
		KeyFieldName:         "Nome",
		KeyFieldEmail:        "Email",
		KeyFieldPhone:        "Telefone",
		KeyFieldAddress:      "Endereço",
		KeyFieldLinkedIn:     "LinkedIn",
		KeyFieldGitHub:       "GitHub",
	}
}
