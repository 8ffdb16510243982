package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/mkarimi/porsesh/app"
	"github.com/mkarimi/porsesh/httpx"
	"github.com/mkarimi/porsesh/log"
	"github.com/mkarimi/porsesh/model"
)

// submission is the survey form payload.
type submission struct {
	Name       string `form:"name"`
	IsEmployed string `form:"is_employed"`
	Job        string `form:"job"`
	AgeFrom    string `form:"age_from"`
	AgeTo      string `form:"age_to"`
}

// submitError enumerates the ways a submission can fail validation.
type submitError int

const (
	submitOK submitError = iota
	errMissingName
	errMissingStatus
	errMissingJob
	errMissingAges
	errAgesNotNumber
	errAgesInverted
)

// User-facing messages, all in one place. The UI is Persian.
const (
	msgMissingName   = "لطفاً نام و نام خانوادگی خود را وارد کنید."
	msgMissingStatus = "لطفاً به سوال اشتغال پاسخ دهید."
	msgMissingJob    = "لطفاً شغل خود را مشخص کنید."
	msgMissingAges   = "لطفاً محدوده سنی کار خود را مشخص کنید."
	msgAgesNotNumber = "لطفاً سن‌ها را به صورت عددی وارد کنید."
	msgAgesInverted  = "سن شروع نمی‌تواند بیشتر از سن پایان باشد."
	msgSubmitOK      = "پاسخ شما با موفقیت ثبت شد. متشکریم!"
	msgSubmitFailed  = "خطا در ثبت پاسخ"
	msgResultsFailed = "خطا در نمایش نتایج"
)

var submitMessages = map[submitError]string{
	errMissingName:   msgMissingName,
	errMissingStatus: msgMissingStatus,
	errMissingJob:    msgMissingJob,
	errMissingAges:   msgMissingAges,
	errAgesNotNumber: msgAgesNotNumber,
	errAgesInverted:  msgAgesInverted,
}

func SubmitSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub submission
		err := render.DecodeForm(r.Body, &sub)
		if err != nil {
			log.Debugf("submit.parse_body: %s", err)
			httpx.Flash(w, r, "error", msgSubmitFailed)
			return
		}

		resp, kind := validate(sub)
		if kind != submitOK {
			httpx.Flash(w, r, "error", submitMessages[kind])
			return
		}

		resp.Time = time.Now()
		if err := app.Append(resp); err != nil {
			log.Errorf("submit.append: %s", err)
			httpx.Flash(w, r, "error", msgSubmitFailed)
			return
		}

		httpx.Flash(w, r, "success", msgSubmitOK)
	}
}

// validate applies the submission rules in order and reports the first
// failing rule. Job and age fields of unemployed respondents are left empty
// no matter what was sent.
func validate(sub submission) (resp model.Response, kind submitError) {
	resp.Name = strings.TrimSpace(sub.Name)
	if resp.Name == "" {
		return resp, errMissingName
	}

	if sub.IsEmployed == "" {
		return resp, errMissingStatus
	}
	resp.Employed = sub.IsEmployed == "yes"
	if !resp.Employed {
		return resp, submitOK
	}

	resp.Job = strings.TrimSpace(sub.Job)
	if resp.Job == "" {
		return resp, errMissingJob
	}

	resp.AgeFrom = strings.TrimSpace(sub.AgeFrom)
	resp.AgeTo = strings.TrimSpace(sub.AgeTo)
	if resp.AgeFrom == "" || resp.AgeTo == "" {
		return resp, errMissingAges
	}

	from, errFrom := strconv.Atoi(resp.AgeFrom)
	to, errTo := strconv.Atoi(resp.AgeTo)
	if errFrom != nil || errTo != nil {
		return resp, errAgesNotNumber
	}
	if from > to {
		return resp, errAgesInverted
	}

	return resp, submitOK
}

func ViewResults(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !app.Exists() {
			render.HTML(w, r, `<h2>هنوز پاسخی ثبت نشده است</h2><br><a href='/'>بازگشت به نظرسنجی</a>`)
			return
		}

		count, err := app.Count()
		if err != nil {
			log.Errorf("results.count: %s", err)
			render.HTML(w, r, msgResultsFailed)
			return
		}

		render.HTML(w, r, fmt.Sprintf(
			`<h2>نتایج نظرسنجی</h2><br>تعداد پاسخ‌ها: %d<br><br><a href='/'>بازگشت به نظرسنجی</a>`,
			count,
		))
	}
}
