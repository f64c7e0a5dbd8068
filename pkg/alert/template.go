package alert

import (
	"fmt"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

// User-facing messages are in French, the platform's working language.

func submittedSubject(projectTitle string) string {
	return fmt.Sprintf("Nouvelle candidature pour « %s »", projectTitle)
}

func submittedBody(ownerName, applicantName, projectTitle, needTitle string) string {
	return fmt.Sprintf(
		"Bonjour %s,\n\n%s a soumis une candidature pour le besoin « %s » de votre projet « %s ».\n"+
			"Connectez-vous à votre tableau de bord pour l'examiner.",
		ownerName, applicantName, needTitle, projectTitle)
}

func decisionSubject(decision model.ReviewDecision, projectTitle string) string {
	if decision == model.DecisionAccept {
		return fmt.Sprintf("Candidature acceptée — %s", projectTitle)
	}
	return fmt.Sprintf("Candidature non retenue — %s", projectTitle)
}

func decisionBody(applicantName, projectTitle, needTitle string, decision model.ReviewDecision, note string) string {
	var verdict string
	if decision == model.DecisionAccept {
		verdict = fmt.Sprintf(
			"votre candidature pour le besoin « %s » du projet « %s » a été acceptée. Vous êtes désormais membre du projet.",
			needTitle, projectTitle)
	} else {
		verdict = fmt.Sprintf(
			"votre candidature pour le besoin « %s » du projet « %s » n'a pas été retenue.",
			needTitle, projectTitle)
	}
	body := fmt.Sprintf("Bonjour %s,\n\n%s", applicantName, verdict)
	if note != "" {
		body += fmt.Sprintf("\n\nNote du porteur de projet : %s", note)
	}
	return body
}

func anomalySubject(projectTitle string) string {
	return fmt.Sprintf("Allocation de parts incohérente — %s", projectTitle)
}

func anomalyBody(projectTitle string, projectID uint, totalAllocated int) string {
	return fmt.Sprintf(
		"Le projet « %s » (id %d) alloue %d%% de parts au total. "+
			"Les écritures ne sont pas bloquées, mais la clôture automatique restera impossible tant que le total dépasse 100%%.",
		projectTitle, projectID, totalAllocated)
}
