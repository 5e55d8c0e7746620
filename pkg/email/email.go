// Package email, gecikmiş iade bildirimleri için email gönderim katmanı sağlar.
//
// OverdueNoticeSender interface'i ile gönderim detayları soyutlanır.
// İki implementasyon vardır:
// 1. NewResendSender — Resend API ile gerçek email gönderir
// 2. NewLogSender — API key yapılandırılmamışsa log'a yazar, hata dönmez
//
// Handler katmanı interface'e bağımlıdır; hangi implementasyonun
// kullanılacağına main.go'daki wire-up karar verir.
package email

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"
)

// OverdueNotice, tek bir gecikme bildiriminin içeriği.
type OverdueNotice struct {
	ToEmail     string
	MemberName  string
	BookTitle   string
	DueDate     string
	DaysOverdue int
}

// OverdueNoticeSender, gecikme bildirimi gönderimi için interface.
type OverdueNoticeSender interface {
	SendOverdueNotice(ctx context.Context, notice OverdueNotice) error
}

// resendSender, Resend API ile gönderen implementasyon.
type resendSender struct {
	client    *resend.Client
	fromEmail string
}

// NewResendSender, Resend API client'ı ile yeni bir sender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Gönderici adresi — Resend'de doğrulanmış domain altında olmalı.
func NewResendSender(apiKey, fromEmail string) OverdueNoticeSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (s *resendSender) SendOverdueNotice(ctx context.Context, n OverdueNotice) error {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#1f2933;">
  <h2 style="margin:0 0 16px 0;">Overdue book reminder</h2>
  <p>Dear %s,</p>
  <p>
    Our records show that <strong>%s</strong> was due back on <strong>%s</strong>
    and is now <strong>%d day(s)</strong> overdue.
  </p>
  <p>Please return it at your earliest convenience so other members can borrow it.</p>
  <p style="color:#7b8794;font-size:13px;">
    If you have already returned this book, you can ignore this message.
  </p>
</body>
</html>`, n.MemberName, n.BookTitle, n.DueDate, n.DaysOverdue)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Library <%s>", s.fromEmail),
		To:      []string{n.ToEmail},
		Subject: fmt.Sprintf("Overdue reminder: %s", n.BookTitle),
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send overdue notice: %w", err)
	}

	return nil
}

// logSender, email göndermek yerine log'a yazan fallback implementasyon.
// MAIL_API_KEY boş olduğunda wire edilir — endpoint davranışı değişmez,
// sadece gerçek gönderim yapılmaz.
type logSender struct{}

// NewLogSender, log-only sender oluşturur.
func NewLogSender() OverdueNoticeSender {
	return logSender{}
}

func (logSender) SendOverdueNotice(_ context.Context, n OverdueNotice) error {
	log.Printf("[mail] (dry-run) overdue notice to %s: %q due %s, %d day(s) overdue",
		n.ToEmail, n.BookTitle, n.DueDate, n.DaysOverdue)
	return nil
}
