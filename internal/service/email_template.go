package service

import (
	"fmt"
	"strings"

	"github.com/filaliempire/crm-server/models"
)

// emailLayout is the branded HTML shell of every outbound mass email.
// {{MARKER}} placeholders are substituted per send; {name} inside the body is
// substituted per recipient.
const emailLayout = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{SUBJECT_LINE}}</title>
  <style>
    body{ margin:0; padding:0; width:100%!important; background:#0b0d12 }
    .wrap{ width:100%; max-width:640px; margin:0 auto }
    .card{ background:#141922; border:1px solid #2b3341; border-radius:16px; overflow:hidden }
    .band{ height:10px; line-height:10px; background:#e53935 }
    .h1{ color:#ffffff; font-weight:900; font-size:30px; line-height:1.2; margin:0 0 12px; text-align:center }
    .note{ background:#1a1f2e; border:1px solid #3a4553; border-radius:14px; padding:20px }
    .note p{ color:#f0f2f5; font-size:16px; line-height:1.7; margin:0 0 12px }
    .btn a{ display:inline-block; background:#e53935; color:#fff!important; font-weight:900;
      padding:14px 24px; border-radius:12px; text-decoration:none }
    .footer{ color:#9aa3b2; font-size:12px; text-align:center; padding:20px }
    .footer a{ color:#9aa3b2 }
  </style>
</head>
<body>
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
    <tr>
      <td align="center" style="padding:20px">
        <table role="presentation" class="wrap" cellspacing="0" cellpadding="0">
          <tr>
            <td class="card">
              <div class="band"></div>
              <div style="padding:32px">
                <h1 class="h1">{{SUBJECT_LINE}}</h1>
                <div class="note">{{EMAIL_BODY}}</div>
                <div style="height:22px;line-height:22px">&nbsp;</div>
                <table role="presentation" align="center" cellspacing="0" cellpadding="0">
                  <tr>
                    <td class="btn" align="center">
                      <a href="{{URL}}" target="_blank">{{CALL_TO_ACTION}}</a>
                    </td>
                  </tr>
                </table>
              </div>
            </td>
          </tr>
          <tr>
            <td class="footer">
              {{FOOTER_LINKS}}<br>
              <a href="{{MANAGE_PREFERENCES_URL}}">Manage preferences</a> &middot;
              <a href="{{UNSUBSCRIBE_URL}}">Unsubscribe</a>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

// renderEmailHTML substitutes the template markers into the branded layout.
// The plain-text body is converted to HTML paragraphs first.
func renderEmailHTML(vars models.TemplateVars) string {
	return strings.NewReplacer(
		"{{SUBJECT_LINE}}", vars.SubjectLine,
		"{{EMAIL_BODY}}", textToHTML(vars.EmailBody),
		"{{CALL_TO_ACTION}}", vars.CallToAction,
		"{{URL}}", vars.URL,
		"{{FOOTER_LINKS}}", vars.FooterLinks,
		"{{MANAGE_PREFERENCES_URL}}", vars.ManagePreferencesURL,
		"{{UNSUBSCRIBE_URL}}", vars.UnsubscribeURL,
	).Replace(emailLayout)
}

// textToHTML converts a plain-text body into HTML: double newlines delimit
// paragraphs, single newlines become <br>.
func textToHTML(text string) string {
	var b strings.Builder
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(paragraph, "\n", "<br>"))
	}
	return b.String()
}
