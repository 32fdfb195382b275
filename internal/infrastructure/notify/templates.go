package notify

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"heritage_gold/internal/domain/entities"
)

func orderIntentTelegram(o entities.OrderIntent) string {
	var items strings.Builder
	for i, l := range o.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "• %s - Est. %s", esc(l.Name), rupees(l.Estimate))
	}

	return fmt.Sprintf(`🔔 <b>New Order Intent</b>

<b>Order ID:</b> %s
<b>Customer:</b> %s
<b>Phone:</b> %s
<b>Email:</b> %s
<b>Occasion:</b> %s
<b>Timeline:</b> %s

<b>Items:</b>
%s

<b>Total Estimate:</b> %s

<b>Message:</b> %s`,
		esc(o.OrderID), esc(o.CustomerName), esc(o.CustomerPhone), esc(o.CustomerEmail),
		esc(o.Occasion), esc(o.Timeline), items.String(), rupees(o.TotalEstimate), esc(orNone(o.Message)))
}

func orderIntentEmailSubject(o entities.OrderIntent) string {
	return fmt.Sprintf("Order Intent #%s - Thank you for your interest!", o.OrderID)
}

func orderIntentEmail(o entities.OrderIntent) string {
	var items strings.Builder
	for _, l := range o.Items {
		fmt.Fprintf(&items, "<li>%s - Est. %s</li>", esc(l.Name), rupees(l.Estimate))
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #064E3B;">New Order Intent Received</h2>
<p><strong>Order ID:</strong> %s</p>
<p><strong>Customer:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Occasion:</strong> %s</p>
<p><strong>Timeline:</strong> %s</p>
<h3>Items:</h3>
<ul>%s</ul>
<p><strong>Total Estimate:</strong> %s</p>
<p><strong>Message:</strong> %s</p>
</div>`,
		esc(o.OrderID), esc(o.CustomerName), esc(o.CustomerPhone), esc(o.CustomerEmail),
		esc(o.Occasion), esc(o.Timeline), items.String(), rupees(o.TotalEstimate), esc(orNone(o.Message)))
}

func contactTelegram(m entities.ContactMessage) string {
	return fmt.Sprintf(`📩 <b>New Contact Inquiry</b>

<b>Name:</b> %s
<b>Email:</b> %s
<b>Phone:</b> %s
<b>Subject:</b> %s

<b>Message:</b>
%s`, esc(m.Name), esc(m.Email), esc(m.Phone), esc(m.Subject), esc(m.Message))
}

// rupees formats whole currency units with thousands separators: ₹125,000.00.
func rupees(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatInt(v, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + "₹" + b.String() + ".00"
}

func esc(s string) string {
	return html.EscapeString(s)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
