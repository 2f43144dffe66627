package email

import (
	"fmt"
	"html"
	"time"
)

// PasswordReset builds the bilingual password reset message.
func PasswordReset(toAddress, toName, link string, ttl time.Duration) Message {
	minutes := int(ttl.Minutes())
	text := fmt.Sprintf(`مرحباً %[1]s،

تلقينا طلباً لإعادة تعيين كلمة المرور. استخدم الرابط التالي خلال %[3]d دقيقة:
%[2]s

إذا لم تطلب ذلك فتجاهل هذه الرسالة.

---

Hello %[1]s,

We received a request to reset your password. Use the link below within %[3]d minutes:
%[2]s

If you did not request this, ignore this email.
`, toName, link, minutes)

	name, href := html.EscapeString(toName), html.EscapeString(link)
	body := fmt.Sprintf(`<div dir="rtl" lang="ar">
<p>مرحباً %[1]s،</p>
<p>تلقينا طلباً لإعادة تعيين كلمة المرور.</p>
<p><a href="%[2]s">إعادة تعيين كلمة المرور</a></p>
</div>
<hr>
<div dir="ltr" lang="en">
<p>Hello %[1]s,</p>
<p>We received a request to reset your password.</p>
<p><a href="%[2]s">Reset password</a></p>
</div>`, name, href)

	return Message{
		ToAddress: toAddress,
		ToName:    toName,
		Subject:   "إعادة تعيين كلمة المرور | Password reset",
		Text:      text,
		HTML:      body,
	}
}
