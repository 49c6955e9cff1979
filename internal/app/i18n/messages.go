package i18n

import "golang.org/x/text/language"

var translations = map[language.Tag]map[string]string{
	language.German: {
		"None": "Keins",
		"LDAP Connection":                              "LDAP-Verbindung",
		"The LDAP connection to use for this backend.": "Die LDAP-Verbindung, die für dieses Backend verwendet werden soll.",
		"User Backend": "Benutzer-Backend",
		"The user backend to link with this user group backend.": "Das Benutzer-Backend, das mit diesem Benutzergruppen-Backend verknüpft werden soll.",
		"LDAP Group Object Class":                                 "LDAP-Gruppen-Objektklasse",
		"The object class used for storing groups on the LDAP server.": "Die Objektklasse, mit der Gruppen auf dem LDAP-Server gespeichert werden.",
		"LDAP Group Filter": "LDAP-Gruppenfilter",
		"An additional filter to use when looking up groups using the specified connection. Leave empty to not to use any additional filter rules.": "Ein zusätzlicher Filter für die Suche nach Gruppen über die angegebene Verbindung. Leer lassen, um keine zusätzlichen Filterregeln zu verwenden.",
		"The filter needs to be expressed as standard LDAP expression, without outer parentheses. (e.g. &(foo=bar)(bar=foo) or foo=bar)": "Der Filter muss als Standard-LDAP-Ausdruck ohne äußere Klammern angegeben werden. (z.B. &(foo=bar)(bar=foo) oder foo=bar)",
		"The filter must not be wrapped in parantheses.":                         "Der Filter darf nicht in Klammern eingeschlossen sein.",
		"The filter is not a valid LDAP expression.":                             "Der Filter ist kein gültiger LDAP-Ausdruck.",
		"The value is not a valid distinguished name.":                           "Der Wert ist kein gültiger Distinguished Name.",
		"LDAP Group Name Attribute":                                              "LDAP-Gruppenname-Attribut",
		"The attribute name used for storing a group's name on the LDAP server.": "Der Attributname, unter dem der Name einer Gruppe auf dem LDAP-Server gespeichert wird.",
		"LDAP Group Member Attribute":                                            "LDAP-Gruppenmitglied-Attribut",
		"The attribute name used for storing a group's members on the LDAP server.": "Der Attributname, unter dem die Mitglieder einer Gruppe auf dem LDAP-Server gespeichert werden.",
		"LDAP Group Base DN": "LDAP-Gruppen-Basis-DN",
		"The path where groups can be found on the LDAP server. Leave empty to select all users available using the specified connection.": "Der Pfad, unter dem Gruppen auf dem LDAP-Server zu finden sind. Leer lassen, um alle über die angegebene Verbindung verfügbaren Benutzer auszuwählen.",
		"LDAP User Object Class": "LDAP-Benutzer-Objektklasse",
		"The object class used for storing users on the LDAP server.": "Die Objektklasse, mit der Benutzer auf dem LDAP-Server gespeichert werden.",
		"LDAP User Filter": "LDAP-Benutzerfilter",
		"An additional filter to use when looking up users using the specified connection. Leave empty to not to use any additional filter rules.": "Ein zusätzlicher Filter für die Suche nach Benutzern über die angegebene Verbindung. Leer lassen, um keine zusätzlichen Filterregeln zu verwenden.",
		"LDAP User Name Attribute": "LDAP-Benutzername-Attribut",
		"The attribute name used for storing a user's name on the LDAP server.": "Der Attributname, unter dem der Name eines Benutzers auf dem LDAP-Server gespeichert wird.",
		"LDAP User Base DN": "LDAP-Benutzer-Basis-DN",
		"The path where users can be found on the LDAP server. Leave empty to select all users available using the specified connection.": "Der Pfad, unter dem Benutzer auf dem LDAP-Server zu finden sind. Leer lassen, um alle über die angegebene Verbindung verfügbaren Benutzer auszuwählen.",
		"No LDAP resources available. Please configure an LDAP resource first.": "Keine LDAP-Ressourcen verfügbar. Bitte zuerst eine LDAP-Ressource konfigurieren.",
		"The value is required.": "Der Wert ist erforderlich.",
		"The value is not one of the available options.": "Der Wert ist keine der verfügbaren Optionen.",
	},
}
