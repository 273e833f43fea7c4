package notification

import "html/template"

var registrationReceivedTmpl = template.Must(template.New("registration_received").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>Olá, {{.Name}}!</h2>
  <p>Recebemos com sucesso sua pré-inscrição para o retiro <strong>Temporada de Férias 2026 - Inconformados</strong>.</p>
  <p>Agradecemos seu interesse em fazer parte deste momento especial!</p>
  <p>As instruções para o próximo passo, referente ao pagamento, foram exibidas na tela de conclusão do formulário. Se você optou pelo pagamento via PIX, o QR Code foi gerado para sua conveniência.</p>
  <p>Para pagamentos via carnê ou presencial, por favor, siga as orientações e procure a secretaria da UPA Religados para efetivar o pagamento e garantir sua vaga.</p>
  <p>Qualquer dúvida, não hesite em entrar em contato conosco pelo WhatsApp disponível no site.</p>
  <br>
  <p>Com alegria,</p>
  <p><strong>Equipe da Temporada de Férias 2026</strong></p>
</div>`))

var paymentConfirmedTmpl = template.Must(template.New("payment_confirmed").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>Oba, {{.Name}}! Temos uma ótima notícia!</h2>
  <p>Seu pagamento foi confirmado e sua vaga para o retiro <strong>Temporada de Férias 2026 - Inconformados</strong> está oficialmente garantida!</p>
  <p>Estamos muito felizes em ter você conosco para viver dias incríveis de comunhão, aprendizado e diversão na presença de Deus.</p>
  <p>Fique de olho em nossos canais de comunicação para mais informações e novidades sobre o evento. Prepare seu coração!</p>
  <br>
  <p>Nos vemos lá!</p>
  <p><strong>Equipe da Temporada de Férias 2026</strong></p>
</div>`))

var questionAnsweredTmpl = template.Must(template.New("question_answered").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>Olá!</h2>
  <p>Recebemos sua dúvida sobre o nosso retiro e nossa equipe já preparou uma resposta para você. Confira abaixo:</p>
  <br>
  <div style="background-color: #f7f7f7; padding: 15px; border-radius: 8px; border-left: 4px solid #ccc;">
    <p style="font-size: 14px; color: #555; margin: 0;"><strong>Sua pergunta:</strong></p>
    <p style="font-size: 16px; margin-top: 5px; font-style: italic;">"{{.Question}}"</p>
  </div>
  <br>
  <div style="background-color: #e8f5e9; padding: 15px; border-radius: 8px; border-left: 4px solid #4CAF50;">
    <p style="font-size: 14px; color: #333; margin: 0;"><strong>Nossa resposta:</strong></p>
    <p style="font-size: 16px; margin-top: 5px; white-space: pre-wrap;">{{.Answer}}</p>
  </div>
  <br>
  <p>Esperamos que isso ajude! Se precisar de mais alguma coisa, é só perguntar.</p>
  <br>
  <p>Atenciosamente,</p>
  <p><strong>Equipe da Temporada de Férias 2026</strong></p>
</div>`))
