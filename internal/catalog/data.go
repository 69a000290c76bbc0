package catalog

import "aigov/internal/domain"

func ref(s string) *string { return &s }

// builtinRequirements is the compiled-in requirement table. ModuleSource
// names the portal module that owns the evidence for the clause.
var builtinRequirements = []domain.Requirement{
	// EU AI Act (règlement 2024/1689)
	{Framework: domain.FrameworkAIAct, Code: "AIA-09", TitleFr: "Système de gestion des risques", ArticleRef: ref("Art. 9"), ModuleSource: "registry"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-10", TitleFr: "Données et gouvernance des données", ArticleRef: ref("Art. 10"), ModuleSource: "datasets"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-11", TitleFr: "Documentation technique", ArticleRef: ref("Art. 11"), ModuleSource: "registry"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-12", TitleFr: "Tenue de journaux", ArticleRef: ref("Art. 12"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-13", TitleFr: "Transparence et fourniture d'informations aux déployeurs", ArticleRef: ref("Art. 13"), ModuleSource: "transparency"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-14", TitleFr: "Contrôle humain", ArticleRef: ref("Art. 14"), ModuleSource: "registry"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-15", TitleFr: "Exactitude, robustesse et cybersécurité", ArticleRef: ref("Art. 15"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-26", TitleFr: "Obligations des déployeurs de systèmes à haut risque", ArticleRef: ref("Art. 26"), ModuleSource: "policies"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-27", TitleFr: "Analyse d'impact sur les droits fondamentaux", ArticleRef: ref("Art. 27"), ModuleSource: "compliance"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-50", TitleFr: "Obligations de transparence pour certains systèmes d'IA", ArticleRef: ref("Art. 50"), ModuleSource: "transparency"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-72", TitleFr: "Surveillance après commercialisation", ArticleRef: ref("Art. 72"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkAIAct, Code: "AIA-73", TitleFr: "Notification des incidents graves", ArticleRef: ref("Art. 73"), ModuleSource: "incidents"},

	// RGPD (règlement 2016/679)
	{Framework: domain.FrameworkGDPR, Code: "RGPD-05", TitleFr: "Principes relatifs au traitement des données", ArticleRef: ref("Art. 5"), ModuleSource: "policies"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-06", TitleFr: "Licéité du traitement", ArticleRef: ref("Art. 6"), ModuleSource: "datasets"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-13", TitleFr: "Informations à fournir aux personnes concernées", ArticleRef: ref("Art. 13"), ModuleSource: "transparency"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-22", TitleFr: "Décision individuelle automatisée", ArticleRef: ref("Art. 22"), ModuleSource: "contestations"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-25", TitleFr: "Protection des données dès la conception et par défaut", ArticleRef: ref("Art. 25"), ModuleSource: "registry"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-30", TitleFr: "Registre des activités de traitement", ArticleRef: ref("Art. 30"), ModuleSource: "datasets"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-32", TitleFr: "Sécurité du traitement", ArticleRef: ref("Art. 32"), ModuleSource: "vendors"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-33", TitleFr: "Notification des violations de données", ArticleRef: ref("Art. 33"), ModuleSource: "incidents"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-35", TitleFr: "Analyse d'impact relative à la protection des données", ArticleRef: ref("Art. 35"), ModuleSource: "compliance"},
	{Framework: domain.FrameworkGDPR, Code: "RGPD-37", TitleFr: "Désignation d'un délégué à la protection des données", ArticleRef: ref("Art. 37"), ModuleSource: "policies"},

	// Loi 25 (Québec)
	{Framework: domain.FrameworkLoi25, Code: "L25-3.1", TitleFr: "Gouvernance des renseignements personnels", ArticleRef: ref("art. 3.1"), ModuleSource: "policies"},
	{Framework: domain.FrameworkLoi25, Code: "L25-3.3", TitleFr: "Évaluation des facteurs relatifs à la vie privée", ArticleRef: ref("art. 3.3"), ModuleSource: "compliance"},
	{Framework: domain.FrameworkLoi25, Code: "L25-3.5", TitleFr: "Registre des incidents de confidentialité", ArticleRef: ref("art. 3.5"), ModuleSource: "incidents"},
	{Framework: domain.FrameworkLoi25, Code: "L25-8.1", TitleFr: "Information sur les moyens technologiques de collecte", ArticleRef: ref("art. 8.1"), ModuleSource: "transparency"},
	{Framework: domain.FrameworkLoi25, Code: "L25-12.1", TitleFr: "Décision fondée exclusivement sur un traitement automatisé", ArticleRef: ref("art. 12.1"), ModuleSource: "contestations"},
	{Framework: domain.FrameworkLoi25, Code: "L25-17", TitleFr: "Communication de renseignements à l'extérieur du Québec", ArticleRef: ref("art. 17"), ModuleSource: "vendors"},

	// ISO/IEC 42001
	{Framework: domain.FrameworkISO42001, Code: "ISO42-4.1", TitleFr: "Compréhension de l'organisme et de son contexte", ArticleRef: ref("§ 4.1"), ModuleSource: "policies"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-5.2", TitleFr: "Politique de management de l'IA", ArticleRef: ref("§ 5.2"), ModuleSource: "policies"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-6.1", TitleFr: "Actions face aux risques et opportunités", ArticleRef: ref("§ 6.1"), ModuleSource: "registry"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-7.4", TitleFr: "Communication interne et externe", ArticleRef: ref("§ 7.4"), ModuleSource: "transparency"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-8.2", TitleFr: "Évaluation d'impact des systèmes d'IA", ArticleRef: ref("§ 8.2"), ModuleSource: "compliance"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-9.1", TitleFr: "Surveillance, mesure, analyse et évaluation", ArticleRef: ref("§ 9.1"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-10.2", TitleFr: "Non-conformité et actions correctives", ArticleRef: ref("§ 10.2"), ModuleSource: "incidents"},
	{Framework: domain.FrameworkISO42001, Code: "ISO42-A.10.3", TitleFr: "Fournisseurs de systèmes et de composants d'IA", ArticleRef: ref("Annexe A.10.3"), ModuleSource: "vendors"},

	// NIST AI RMF 1.0
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-GV-1", TitleFr: "Gouvernance : politiques, processus et responsabilités", ArticleRef: ref("GOVERN 1"), ModuleSource: "policies"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-GV-6", TitleFr: "Gouvernance : risques de la chaîne d'approvisionnement", ArticleRef: ref("GOVERN 6"), ModuleSource: "vendors"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MP-1", TitleFr: "Cartographie : contexte et finalités du système", ArticleRef: ref("MAP 1"), ModuleSource: "registry"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MP-5", TitleFr: "Cartographie : impacts sur les individus et la société", ArticleRef: ref("MAP 5"), ModuleSource: "compliance"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MS-2", TitleFr: "Mesure : évaluation de la fiabilité du système", ArticleRef: ref("MEASURE 2"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MS-3", TitleFr: "Mesure : suivi des risques identifiés", ArticleRef: ref("MEASURE 3"), ModuleSource: "monitoring"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MG-2", TitleFr: "Gestion : priorisation et traitement des risques", ArticleRef: ref("MANAGE 2"), ModuleSource: "registry"},
	{Framework: domain.FrameworkNISTAIRMF, Code: "NIST-MG-4", TitleFr: "Gestion : réponse aux incidents et recours", ArticleRef: ref("MANAGE 4"), ModuleSource: "incidents"},
}
