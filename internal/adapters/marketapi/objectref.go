package marketapi

import (
	"encoding/json"
)

// oidKey - ключ обертки ссылок документной БД: {"$oid": "<id>"}
const oidKey = "$oid"

// ObjectRef - идентификатор-ссылка с провода.
// Бэкенд кодирует один и тот же идентификатор то голой строкой,
// то оберткой {"$oid": "..."}; обе формы сводятся к строке.
type ObjectRef struct {
	ID string
}

// UnmarshalJSON выполняет единую процедуру распаковки для всех
// ссылочных полей всех сущностей, в строгом порядке:
//  1. отсутствие значения / null -> пусто
//  2. строка                     -> сама строка
//  3. объект с ключом $oid       -> строка из обертки
//  4. любая другая форма          -> пусто, без ошибки
func (r *ObjectRef) UnmarshalJSON(data []byte) error {
	r.ID = ""

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		// Сломанную форму считаем отсутствием идентификатора
		return nil
	}

	switch val := v.(type) {
	case string:
		r.ID = val
	case map[string]interface{}:
		if id, ok := val[oidKey].(string); ok {
			r.ID = id
		}
	default:
		// null, число, массив, bool - идентификатора нет
	}

	return nil
}

// MarshalJSON кодирует ссылку обратно голой строкой
func (r ObjectRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r ObjectRef) String() string {
	return r.ID
}
